package repository

import (
	"context"
	"errors"

	"github.com/syrineTissaoui/recalammation/internal/models"
)

// Store-level failure modes. The postgres implementations map driver
// errors onto these; services and handlers only ever see the sentinels.
var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("concurrent update lost")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnavailable    = errors.New("store unavailable")
)

type TicketRepository interface {
	Create(ctx context.Context, t *models.Ticket) error
	// Get returns ErrNotFound when the id does not exist.
	Get(ctx context.Context, id string) (*models.Ticket, error)
	// ListAll returns every ticket with its note trail, newest first
	// (created_at DESC, id DESC).
	ListAll(ctx context.Context) ([]models.Ticket, error)
	// ListByOwner is the owner-scoped variant of ListAll.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Ticket, error)
	// UpdateStatus moves id from the expected current status to next in one
	// conditional write. ErrConflict when the row exists but its status is
	// no longer from; ErrNotFound when the row is gone.
	UpdateStatus(ctx context.Context, id string, from, to models.Status) (*models.Ticket, error)
	// AppendNote atomically appends n and bumps the ticket's updated_at.
	AppendNote(ctx context.Context, ticketID string, n models.Note) (*models.Ticket, error)
}

type UserRepository interface {
	// Create returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, u *models.User, passwordHash string) error
	// GetByEmail returns the user and their password hash, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
