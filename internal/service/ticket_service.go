package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/models"
	"github.com/syrineTissaoui/recalammation/internal/policy"
	"github.com/syrineTissaoui/recalammation/internal/repository"
)

// TicketService is the workflow engine: every operation consults the
// authorization policy before touching the store.
type TicketService struct {
	tickets repository.TicketRepository
	now     func() time.Time
}

func NewTicketService(tickets repository.TicketRepository) *TicketService {
	return &TicketService{tickets: tickets, now: time.Now}
}

// CreateInput is the caller-supplied part of a new ticket. Owner and
// status are never taken from it.
type CreateInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
}

func (s *TicketService) Create(ctx context.Context, id auth.Identity, in CreateInput) (*models.Ticket, error) {
	if d := policy.Authorize(id, policy.CreateTicket, nil); !d.Allowed {
		return nil, ErrForbidden
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if len(in.Title) < 3 {
		return nil, invalidInput("title must be at least 3 characters")
	}
	if len(in.Description) < 3 {
		return nil, invalidInput("description must be at least 3 characters")
	}
	cat, err := models.ParseCategory(in.Category)
	if err != nil {
		return nil, invalidInput("%v", err)
	}
	prio, err := models.ParsePriority(in.Priority)
	if err != nil {
		return nil, invalidInput("%v", err)
	}

	now := s.now()
	t := &models.Ticket{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    cat,
		Priority:    prio,
		Status:      models.StatusOpen,
		OwnerID:     id.SubjectID,
		Notes:       []models.Note{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the tickets the identity may see, newest first. Reviewers
// get everything; submitters only their own.
func (s *TicketService) List(ctx context.Context, id auth.Identity) ([]models.Ticket, error) {
	d := policy.Authorize(id, policy.ListTickets, nil)
	if !d.Allowed {
		return nil, ErrForbidden
	}
	if d.Scope == policy.ScopeAll {
		return s.tickets.ListAll(ctx)
	}
	return s.tickets.ListByOwner(ctx, id.SubjectID)
}

// ListOwn always returns the caller's own tickets, whatever their role.
func (s *TicketService) ListOwn(ctx context.Context, id auth.Identity) ([]models.Ticket, error) {
	if d := policy.Authorize(id, policy.ListTickets, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.tickets.ListByOwner(ctx, id.SubjectID)
}

func (s *TicketService) Get(ctx context.Context, id auth.Identity, ticketID string) (*models.Ticket, error) {
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if d := policy.Authorize(id, policy.ViewTicket, t); !d.Allowed {
		return nil, ErrForbidden
	}
	return t, nil
}

// Transition moves a ticket to the requested status. The policy check
// comes first, then the state machine, then a conditional write so a
// concurrent transition surfaces as a conflict instead of a lost update.
func (s *TicketService) Transition(ctx context.Context, id auth.Identity, ticketID string, to models.Status) (*models.Ticket, error) {
	if d := policy.Authorize(id, policy.TransitionStatus, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	t, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !t.Status.CanTransitionTo(to) {
		return nil, &InvalidTransitionError{From: t.Status, To: to}
	}
	return s.tickets.UpdateStatus(ctx, ticketID, t.Status, to)
}

// AppendNote adds an attributed note to the end of the ticket's trail.
// The author is the verified identity, never caller input.
func (s *TicketService) AppendNote(ctx context.Context, id auth.Identity, ticketID, text string) (*models.Ticket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidInput("text is required")
	}
	if d := policy.Authorize(id, policy.AppendNote, nil); !d.Allowed {
		return nil, ErrForbidden
	}
	n := models.Note{
		ID:       uuid.NewString(),
		AuthorID: id.SubjectID,
		Text:     text,
		At:       s.now(),
	}
	return s.tickets.AppendNote(ctx, ticketID, n)
}
