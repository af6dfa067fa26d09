package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Repos bundles one of each repository over the same connection.
type Repos struct {
	Stays       StayRepo
	Checklist   ChecklistRepo
	Suggestions SuggestionRepo
	Preferences PreferenceRepo
}

// NewRepos builds every repository over db.
func NewRepos(db db) Repos {
	return Repos{
		Stays:       NewStayRepo(db),
		Checklist:   NewChecklistRepo(db),
		Suggestions: NewSuggestionRepo(db),
		Preferences: NewPreferenceRepo(db),
	}
}

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx (as a savepoint).
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store runs work that must commit or roll back as a unit.
type Store struct {
	db beginner
}

// NewStore constructs a Store over a pool, or a transaction in tests.
func NewStore(db beginner) *Store {
	return &Store{db: db}
}

// InTx calls fn with repositories bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(Repos) error) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
	if err != nil {
		return fmt.Errorf("repo.Store.InTx: %w", err)
	}
	return nil
}
