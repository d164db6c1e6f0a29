package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syrineTissaoui/recalammation/internal/models"
	"github.com/syrineTissaoui/recalammation/internal/repository"
)

type TicketRepo struct{ db *pgxpool.Pool }

func NewTicketRepo(db *pgxpool.Pool) *TicketRepo { return &TicketRepo{db: db} }

const ticketCols = `id, title, description, category, priority, status, created_by, created_at, updated_at`

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var t models.Ticket
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.Priority,
		&t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, wrap(err)
	}
	t.Notes = []models.Note{}
	return &t, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tickets (id, title, description, category, priority, status, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		t.ID, t.Title, t.Description, t.Category, t.Priority, t.Status, t.OwnerID, t.CreatedAt, t.UpdatedAt,
	)
	return wrap(err)
}

func (r *TicketRepo) Get(ctx context.Context, id string) (*models.Ticket, error) {
	t, err := scanTicket(r.db.QueryRow(ctx, `
		SELECT `+ticketCols+` FROM tickets WHERE id=$1
	`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, author_id, text, created_at
		FROM notes
		WHERE ticket_id = $1
		ORDER BY created_at ASC, id ASC
	`, id)
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.AuthorID, &n.Text, &n.At); err != nil {
			return nil, wrap(err)
		}
		t.Notes = append(t.Notes, n)
	}
	return t, wrap(rows.Err())
}

func (r *TicketRepo) ListAll(ctx context.Context) ([]models.Ticket, error) {
	return r.list(ctx, `
		SELECT `+ticketCols+` FROM tickets
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *TicketRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Ticket, error) {
	return r.list(ctx, `
		SELECT `+ticketCols+` FROM tickets
		WHERE created_by = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
}

func (r *TicketRepo) list(ctx context.Context, sql string, args ...any) ([]models.Ticket, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrap(err)
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Category, &t.Priority,
			&t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, wrap(err)
		}
		t.Notes = []models.Note{}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return out, r.attachNotes(ctx, out)
}

// attachNotes loads the note trails for a page of tickets in one query.
func (r *TicketRepo) attachNotes(ctx context.Context, tickets []models.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	ids := make([]string, len(tickets))
	byID := make(map[string]*models.Ticket, len(tickets))
	for i := range tickets {
		ids[i] = tickets[i].ID
		byID[tickets[i].ID] = &tickets[i]
	}

	rows, err := r.db.Query(ctx, `
		SELECT ticket_id, id, author_id, text, created_at
		FROM notes
		WHERE ticket_id = ANY($1::uuid[])
		ORDER BY created_at ASC, id ASC
	`, ids)
	if err != nil {
		return wrap(err)
	}
	defer rows.Close()
	for rows.Next() {
		var ticketID string
		var n models.Note
		if err := rows.Scan(&ticketID, &n.ID, &n.AuthorID, &n.Text, &n.At); err != nil {
			return wrap(err)
		}
		if t, ok := byID[ticketID]; ok {
			t.Notes = append(t.Notes, n)
		}
	}
	return wrap(rows.Err())
}

// UpdateStatus is a compare-and-set on the current status: the write only
// lands when the row still holds the status the caller read.
func (r *TicketRepo) UpdateStatus(ctx context.Context, id string, from, to models.Status) (*models.Ticket, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE tickets SET status=$3, updated_at=$4
		WHERE id=$1 AND status=$2
	`, id, from, to, time.Now())
	if err != nil {
		return nil, wrap(err)
	}
	if ct.RowsAffected() == 0 {
		// Distinguish a vanished row from a lost race.
		var cur models.Status
		err := r.db.QueryRow(ctx, `SELECT status FROM tickets WHERE id=$1`, id).Scan(&cur)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		if err != nil {
			return nil, wrap(err)
		}
		return nil, repository.ErrConflict
	}
	return r.Get(ctx, id)
}

// AppendNote inserts the note and bumps updated_at in one transaction. The
// ticket row is updated first so a missing ticket fails cleanly before the
// insert.
func (r *TicketRepo) AppendNote(ctx context.Context, ticketID string, n models.Note) (*models.Ticket, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `UPDATE tickets SET updated_at=$2 WHERE id=$1`, ticketID, n.At)
	if err != nil {
		return nil, wrap(err)
	}
	if ct.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO notes (id, ticket_id, author_id, text, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, n.ID, ticketID, n.AuthorID, n.Text, n.At); err != nil {
		return nil, wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, wrap(err)
	}
	return r.Get(ctx, ticketID)
}
