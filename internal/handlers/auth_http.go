package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/repository"
	"github.com/syrineTissaoui/recalammation/internal/service"
	"github.com/syrineTissaoui/recalammation/internal/utils"
)

type AuthHTTP struct {
	svc   *service.AuthService
	users repository.UserRepository
	log   zerolog.Logger
}

func NewAuthHTTP(s *service.AuthService, users repository.UserRepository, log zerolog.Logger) *AuthHTTP {
	return &AuthHTTP{svc: s, users: users, log: log}
}

func (h *AuthHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := h.svc.Register(r.Context(), in.Email, in.Name, in.Password, in.Role)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, map[string]any{
			"id":    u.ID,
			"email": u.Email,
			"role":  u.Role,
			"name":  u.Name,
		})
	}
}

func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"token": token, "user": u})
	}
}

// Me returns the authenticated caller's profile.
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFrom(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		u, err := h.users.GetByID(r.Context(), id.SubjectID)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}
