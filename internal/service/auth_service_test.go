package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/models"
	"github.com/syrineTissaoui/recalammation/internal/repository"
)

type memUserRepo struct {
	mu     sync.Mutex
	byID   map[string]*models.User
	hashes map[string]string // email -> hash
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*models.User{}, hashes: map[string]string{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *models.User, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.hashes[u.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.byID[u.ID] = &cp
	r.hashes[u.Email] = passwordHash
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, r.hashes[email], nil
		}
	}
	return nil, "", repository.ErrNotFound
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newAuthService() *AuthService {
	// bcrypt min cost keeps the suite fast
	return NewAuthService(newMemUserRepo(), auth.NewTokenCodec("test-secret", time.Hour), 4)
}

func TestRegister(t *testing.T) {
	svc := newAuthService()

	u, err := svc.Register(context.Background(), " Alice@Example.com ", "Alice", "hunter22", "AGENT")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, models.RoleSubmitter, u.Role)
	assert.NotEmpty(t, u.ID)
}

func TestRegisterDefaultsRole(t *testing.T) {
	svc := newAuthService()

	u, err := svc.Register(context.Background(), "bob@example.com", "Bob", "hunter22", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSubmitter, u.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService()

	cases := []struct{ email, name, password, role string }{
		{"", "Alice", "hunter22", ""},
		{"not-an-email", "Alice", "hunter22", ""},
		{"alice@example.com", "A", "hunter22", ""},
		{"alice@example.com", "Alice", "short", ""},
		{"alice@example.com", "Alice", "hunter22", "ADMIN"},
	}
	for _, c := range cases {
		_, err := svc.Register(context.Background(), c.email, c.name, c.password, c.role)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", c)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), "alice@example.com", "Alice", "hunter22", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "Alice2", "hunter22", "")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc := newAuthService()
	u, err := svc.Register(context.Background(), "carol@example.com", "Carol", "hunter22", "CADRE")
	require.NoError(t, err)

	tok, got, err := svc.Login(context.Background(), "carol@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, tok)

	// the issued credential verifies back to the same subject and role
	id, err := svc.tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.SubjectID)
	assert.Equal(t, models.RoleReviewer, id.Role)
}

func TestLoginRejections(t *testing.T) {
	svc := newAuthService()
	_, err := svc.Register(context.Background(), "carol@example.com", "Carol", "hunter22", "CADRE")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "carol@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email indistinguishable from a bad password
	_, _, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
