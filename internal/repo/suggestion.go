package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// SuggestionRepo is the cache of generated tips, keyed by itinerary event id.
type SuggestionRepo interface {
	// Get returns domain.ErrNotFound when nothing is cached for the event.
	Get(ctx context.Context, eventID int) (domain.Suggestion, error)

	// Put stores or replaces the suggestion for s.EventID.
	Put(ctx context.Context, s domain.Suggestion) (domain.Suggestion, error)

	// Delete returns domain.ErrNotFound when nothing is cached for the event.
	Delete(ctx context.Context, eventID int) error

	// ListPaged returns one page of suggestions ordered by event id and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Suggestion, int64, error)
}

type pgSuggestionRepo struct {
	db db
}

// NewSuggestionRepo constructs a SuggestionRepo backed by the provided db connection.
func NewSuggestionRepo(db db) SuggestionRepo {
	return &pgSuggestionRepo{db: db}
}

func (r *pgSuggestionRepo) Get(ctx context.Context, eventID int) (domain.Suggestion, error) {
	const q = `SELECT event_id, body, created_at FROM ai_suggestions WHERE event_id = @event_id`

	result, err := scanSuggestion(r.db.QueryRow(ctx, q, pgx.NamedArgs{"event_id": eventID}))
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("repo.SuggestionRepo.Get: %w", err)
	}
	return result, nil
}

// Put writes the suggestion. A zero CreatedAt means now.
func (r *pgSuggestionRepo) Put(ctx context.Context, s domain.Suggestion) (domain.Suggestion, error) {
	const q = `
		INSERT INTO ai_suggestions (event_id, body, created_at)
		VALUES (@event_id, @body, COALESCE(@created_at, now()))
		ON CONFLICT (event_id) DO UPDATE
		SET body       = EXCLUDED.body,
		    created_at = EXCLUDED.created_at
		RETURNING event_id, body, created_at`

	args := pgx.NamedArgs{"event_id": s.EventID, "body": s.Body, "created_at": nil}
	if !s.CreatedAt.IsZero() {
		args["created_at"] = s.CreatedAt
	}
	result, err := scanSuggestion(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("repo.SuggestionRepo.Put: %w", err)
	}
	return result, nil
}

func (r *pgSuggestionRepo) Delete(ctx context.Context, eventID int) error {
	const q = `DELETE FROM ai_suggestions WHERE event_id = @event_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"event_id": eventID})
	if err != nil {
		return fmt.Errorf("repo.SuggestionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SuggestionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ListPaged returns one page of suggestions. The COUNT(*) OVER() window
// carries the total on every row, avoiding a second query.
func (r *pgSuggestionRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Suggestion, int64, error) {
	const q = `
		SELECT event_id, body, created_at, COUNT(*) OVER() AS total
		FROM ai_suggestions
		ORDER BY event_id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SuggestionRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var total int64
	out := []domain.Suggestion{}
	for rows.Next() {
		var s domain.Suggestion
		if err := rows.Scan(&s.EventID, &s.Body, &s.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("repo.SuggestionRepo.ListPaged: scan: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.SuggestionRepo.ListPaged: rows: %w", err)
	}

	// A page past the end has no rows to carry the window total.
	if len(out) == 0 && p.Offset() > 0 {
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ai_suggestions`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("repo.SuggestionRepo.ListPaged: count: %w", err)
		}
	}
	return out, total, nil
}

func scanSuggestion(s scanner) (domain.Suggestion, error) {
	var out domain.Suggestion
	if err := s.Scan(&out.EventID, &out.Body, &out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Suggestion{}, domain.ErrNotFound
		}
		return domain.Suggestion{}, err
	}
	return out, nil
}
