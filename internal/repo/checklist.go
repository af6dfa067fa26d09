package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ChecklistRepo persists user-added checklist items and the check state of
// every item, default or custom.
type ChecklistRepo interface {
	// ListCustomItems returns custom items in insertion order.
	ListCustomItems(ctx context.Context) ([]domain.ChecklistItem, error)

	// AddItem inserts a new custom item. The caller supplies the id.
	AddItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)

	// UpsertItem inserts or overwrites a custom item by id.
	UpsertItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)

	// DeleteItem removes a custom item and its check state.
	// Returns domain.ErrNotFound if no such custom item exists.
	DeleteItem(ctx context.Context, id string) error

	// Checks returns the stored check state keyed by item id.
	Checks(ctx context.Context) (map[string]bool, error)

	// SetCheck stores the check state for one item.
	SetCheck(ctx context.Context, itemID string, checked bool) error
}

type pgChecklistRepo struct {
	db db
}

// NewChecklistRepo constructs a ChecklistRepo backed by the provided db connection.
func NewChecklistRepo(db db) ChecklistRepo {
	return &pgChecklistRepo{db: db}
}

func (r *pgChecklistRepo) ListCustomItems(ctx context.Context) ([]domain.ChecklistItem, error) {
	const q = `
		SELECT id, category, label, created_at
		FROM checklist_items
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.ListCustomItems: %w", err)
	}
	items, err := collect(rows, scanChecklistItem)
	if err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.ListCustomItems: %w", err)
	}
	return items, nil
}

func (r *pgChecklistRepo) AddItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	const q = `
		INSERT INTO checklist_items (id, category, label)
		VALUES (@id, @category, @label)
		RETURNING id, category, label, created_at`

	args := pgx.NamedArgs{"id": item.ID, "category": item.Category, "label": item.Label}
	result, err := scanChecklistItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("repo.ChecklistRepo.AddItem: %w", err)
	}
	return result, nil
}

func (r *pgChecklistRepo) UpsertItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	const q = `
		INSERT INTO checklist_items (id, category, label)
		VALUES (@id, @category, @label)
		ON CONFLICT (id) DO UPDATE
		SET category = EXCLUDED.category,
		    label    = EXCLUDED.label
		RETURNING id, category, label, created_at`

	args := pgx.NamedArgs{"id": item.ID, "category": item.Category, "label": item.Label}
	result, err := scanChecklistItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("repo.ChecklistRepo.UpsertItem: %w", err)
	}
	return result, nil
}

// DeleteItem removes the item row and any check mark in one statement.
func (r *pgChecklistRepo) DeleteItem(ctx context.Context, id string) error {
	const q = `
		WITH gone AS (
			DELETE FROM checklist_items WHERE id = @id RETURNING id
		), unchecked AS (
			DELETE FROM checklist_checks WHERE item_id IN (SELECT id FROM gone)
		)
		SELECT count(*) FROM gone`

	var deleted int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&deleted); err != nil {
		return fmt.Errorf("repo.ChecklistRepo.DeleteItem: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("repo.ChecklistRepo.DeleteItem: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgChecklistRepo) Checks(ctx context.Context) (map[string]bool, error) {
	const q = `SELECT item_id, checked FROM checklist_checks`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.Checks: %w", err)
	}
	defer rows.Close()

	checks := map[string]bool{}
	for rows.Next() {
		var (
			id      string
			checked bool
		)
		if err := rows.Scan(&id, &checked); err != nil {
			return nil, fmt.Errorf("repo.ChecklistRepo.Checks: scan: %w", err)
		}
		checks[id] = checked
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ChecklistRepo.Checks: rows: %w", err)
	}
	return checks, nil
}

func (r *pgChecklistRepo) SetCheck(ctx context.Context, itemID string, checked bool) error {
	const q = `
		INSERT INTO checklist_checks (item_id, checked)
		VALUES (@item_id, @checked)
		ON CONFLICT (item_id) DO UPDATE
		SET checked    = EXCLUDED.checked,
		    updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"item_id": itemID, "checked": checked}); err != nil {
		return fmt.Errorf("repo.ChecklistRepo.SetCheck: %w", err)
	}
	return nil
}

func scanChecklistItem(s scanner) (domain.ChecklistItem, error) {
	var it domain.ChecklistItem
	err := s.Scan(&it.ID, &it.Category, &it.Label, &it.AddedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ChecklistItem{}, domain.ErrNotFound
		}
		return domain.ChecklistItem{}, err
	}
	it.Custom = true
	return it, nil
}
