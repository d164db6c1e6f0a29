package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/models"
	"github.com/syrineTissaoui/recalammation/internal/repository"
	"github.com/syrineTissaoui/recalammation/internal/utils"
)

type AuthService struct {
	users      repository.UserRepository
	tokens     auth.TokenCodec
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, tokens auth.TokenCodec, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (a *AuthService) Register(ctx context.Context, email, name, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, invalidInput("email is required")
	}
	if len(name) < 2 {
		return nil, invalidInput("name must be at least 2 characters")
	}
	if len(password) < 6 {
		return nil, invalidInput("password must be at least 6 characters")
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return nil, invalidInput("%v", err)
	}

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  r,
	}
	if err := a.users.Create(ctx, u, hash); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, hash, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := a.tokens.Sign(*u)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}
