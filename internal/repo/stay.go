package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// StayRepo defines the persistence operations for hotel stays.
// The service layer depends on this interface, not the Postgres implementation.
type StayRepo interface {
	// Create inserts a new stay and returns the persisted record with the
	// DB-generated id, created_at and updated_at populated.
	Create(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error)

	// GetByID returns domain.ErrNotFound if no stay with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.HotelStay, error)

	// List returns all stays ordered by check-in, then creation time.
	List(ctx context.Context) ([]domain.HotelStay, error)

	// Update overwrites the mutable fields of an existing stay.
	// Returns domain.ErrNotFound if no stay with that ID exists.
	Update(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error)

	// Delete returns domain.ErrNotFound if the stay does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Upsert writes a stay under its own ID, inserting or overwriting.
	// Used when restoring a backup.
	Upsert(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error)
}

// pgStayRepo is the Postgres implementation of StayRepo.
type pgStayRepo struct {
	db db
}

// NewStayRepo constructs a StayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewStayRepo(db db) StayRepo {
	return &pgStayRepo{db: db}
}

const stayColumns = `id, name, address, check_in, check_out, created_at, updated_at`

func stayArgs(s domain.HotelStay) (pgx.NamedArgs, error) {
	in, err := toDate(s.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("check_in: %w", err)
	}
	out, err := toDate(s.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("check_out: %w", err)
	}
	return pgx.NamedArgs{
		"id":        s.ID,
		"name":      s.Name,
		"address":   s.Address,
		"check_in":  in,
		"check_out": out,
	}, nil
}

// Create inserts a new stay row and returns the full persisted record.
func (r *pgStayRepo) Create(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	const q = `
		INSERT INTO hotel_stays (name, address, check_in, check_out)
		VALUES (@name, @address, @check_in, @check_out)
		RETURNING ` + stayColumns

	args, err := stayArgs(s)
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.Create: %w", err)
	}
	result, err := scanStay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a stay by primary key.
func (r *pgStayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.HotelStay, error) {
	const q = `SELECT ` + stayColumns + ` FROM hotel_stays WHERE id = @id`

	result, err := scanStay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all stays, earliest check-in first.
func (r *pgStayRepo) List(ctx context.Context) ([]domain.HotelStay, error) {
	const q = `SELECT ` + stayColumns + ` FROM hotel_stays ORDER BY check_in, created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.List: %w", err)
	}
	stays, err := collect(rows, scanStay)
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.List: %w", err)
	}
	return stays, nil
}

// Update overwrites the mutable fields of a stay and returns the updated record.
func (r *pgStayRepo) Update(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	const q = `
		UPDATE hotel_stays
		SET name       = @name,
		    address    = @address,
		    check_in   = @check_in,
		    check_out  = @check_out,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + stayColumns

	args, err := stayArgs(s)
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.Update: %w", err)
	}
	result, err := scanStay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a stay by primary key.
func (r *pgStayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM hotel_stays WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.StayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Upsert inserts the stay under its ID or overwrites the existing row.
// created_at is kept from the first insert.
func (r *pgStayRepo) Upsert(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	const q = `
		INSERT INTO hotel_stays (id, name, address, check_in, check_out)
		VALUES (@id, @name, @address, @check_in, @check_out)
		ON CONFLICT (id) DO UPDATE
		SET name       = EXCLUDED.name,
		    address    = EXCLUDED.address,
		    check_in   = EXCLUDED.check_in,
		    check_out  = EXCLUDED.check_out,
		    updated_at = now()
		RETURNING ` + stayColumns

	args, err := stayArgs(s)
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.Upsert: %w", err)
	}
	result, err := scanStay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("repo.StayRepo.Upsert: %w", err)
	}
	return result, nil
}

// scanStay maps a single database row into a domain.HotelStay.
func scanStay(s scanner) (domain.HotelStay, error) {
	var (
		h       domain.HotelStay
		id      pgtype.UUID
		in, out pgtype.Date
	)
	err := s.Scan(&id, &h.Name, &h.Address, &in, &out, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.HotelStay{}, domain.ErrNotFound
		}
		return domain.HotelStay{}, err
	}
	h.ID = uuid.UUID(id.Bytes)
	h.CheckIn = fromDate(in)
	h.CheckOut = fromDate(out)
	return h, nil
}
