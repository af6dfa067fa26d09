package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// PreferenceRepo stores the single row of view state.
type PreferenceRepo interface {
	// Get returns domain.ErrNotFound until preferences have been saved once.
	Get(ctx context.Context) (domain.Preferences, error)

	// Put overwrites the stored preferences.
	Put(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

type pgPreferenceRepo struct {
	db db
}

// NewPreferenceRepo constructs a PreferenceRepo backed by the provided db connection.
func NewPreferenceRepo(db db) PreferenceRepo {
	return &pgPreferenceRepo{db: db}
}

func (r *pgPreferenceRepo) Get(ctx context.Context) (domain.Preferences, error) {
	const q = `SELECT theme, active_tab, hotel_draft, updated_at FROM preferences`

	result, err := scanPreferences(r.db.QueryRow(ctx, q))
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("repo.PreferenceRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgPreferenceRepo) Put(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	const q = `
		INSERT INTO preferences (id, theme, active_tab, hotel_draft)
		VALUES (TRUE, @theme, @active_tab, @hotel_draft)
		ON CONFLICT (id) DO UPDATE
		SET theme       = EXCLUDED.theme,
		    active_tab  = EXCLUDED.active_tab,
		    hotel_draft = EXCLUDED.hotel_draft,
		    updated_at  = now()
		RETURNING theme, active_tab, hotel_draft, updated_at`

	draft, err := json.Marshal(p.Draft)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("repo.PreferenceRepo.Put: encode draft: %w", err)
	}
	args := pgx.NamedArgs{
		"theme":       string(p.Theme),
		"active_tab":  string(p.ActiveTab),
		"hotel_draft": draft,
	}
	result, err := scanPreferences(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("repo.PreferenceRepo.Put: %w", err)
	}
	return result, nil
}

func scanPreferences(s scanner) (domain.Preferences, error) {
	var (
		p     domain.Preferences
		draft []byte
	)
	if err := s.Scan(&p.Theme, &p.ActiveTab, &draft, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Preferences{}, domain.ErrNotFound
		}
		return domain.Preferences{}, err
	}
	if err := json.Unmarshal(draft, &p.Draft); err != nil {
		return domain.Preferences{}, fmt.Errorf("decode draft: %w", err)
	}
	return p, nil
}
