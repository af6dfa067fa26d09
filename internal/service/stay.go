// Package service contains the business logic of the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// StayService implements business logic for hotel stays.
type StayService struct {
	stays repo.StayRepo
}

// NewStayService constructs a StayService backed by the provided StayRepo.
func NewStayService(r repo.StayRepo) *StayService {
	return &StayService{stays: r}
}

// Create validates and persists a new stay.
// Returns domain.ErrValidation or domain.ErrDateParse for bad input and
// domain.ErrConflict when the stay shares a night with a stored one.
func (s *StayService) Create(ctx context.Context, stay domain.HotelStay) (domain.HotelStay, error) {
	stay = normalizeStay(stay)
	if err := validateStay(stay); err != nil {
		return domain.HotelStay{}, err
	}
	stay.ID = uuid.Nil
	if err := s.checkConflict(ctx, stay); err != nil {
		return domain.HotelStay{}, fmt.Errorf("service.StayService.Create: %w", err)
	}
	result, err := s.stays.Create(ctx, stay)
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("service.StayService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns domain.ErrNotFound if there is no such stay.
func (s *StayService) GetByID(ctx context.Context, id uuid.UUID) (domain.HotelStay, error) {
	result, err := s.stays.GetByID(ctx, id)
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("service.StayService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all stays ordered by check-in. Never nil.
func (s *StayService) List(ctx context.Context) ([]domain.HotelStay, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StayService.List: %w", err)
	}
	if stays == nil {
		return []domain.HotelStay{}, nil
	}
	return stays, nil
}

// Update validates and persists changes to an existing stay. The stay is
// not compared against itself when checking for conflicts.
func (s *StayService) Update(ctx context.Context, stay domain.HotelStay) (domain.HotelStay, error) {
	stay = normalizeStay(stay)
	if err := validateStay(stay); err != nil {
		return domain.HotelStay{}, err
	}
	if _, err := s.stays.GetByID(ctx, stay.ID); err != nil {
		return domain.HotelStay{}, fmt.Errorf("service.StayService.Update: %w", err)
	}
	if err := s.checkConflict(ctx, stay); err != nil {
		return domain.HotelStay{}, fmt.Errorf("service.StayService.Update: %w", err)
	}
	result, err := s.stays.Update(ctx, stay)
	if err != nil {
		return domain.HotelStay{}, fmt.Errorf("service.StayService.Update: %w", err)
	}
	return result, nil
}

// Delete returns domain.ErrNotFound if there is no such stay.
func (s *StayService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.stays.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.StayService.Delete: %w", err)
	}
	return nil
}

// Overlaps reports stored stays that share nights. Such pairs can only
// arrive through a restored backup.
func (s *StayService) Overlaps(ctx context.Context) ([]domain.StayOverlap, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StayService.Overlaps: %w", err)
	}
	out, err := calendar.Overlaps(stays)
	if err != nil {
		return nil, fmt.Errorf("service.StayService.Overlaps: %w", err)
	}
	return out, nil
}

func (s *StayService) checkConflict(ctx context.Context, stay domain.HotelStay) error {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return err
	}
	if other, clash := calendar.Conflicting(stay, stays); clash {
		return fmt.Errorf("%w: overlaps %q (%s to %s)", domain.ErrConflict, other.Name, other.CheckIn, other.CheckOut)
	}
	return nil
}

func normalizeStay(stay domain.HotelStay) domain.HotelStay {
	stay.Name = strings.TrimSpace(stay.Name)
	stay.Address = strings.TrimSpace(stay.Address)
	stay.CheckIn = strings.TrimSpace(stay.CheckIn)
	stay.CheckOut = strings.TrimSpace(stay.CheckOut)
	return stay
}

// validateStay enforces the rules shared by Create, Update and restore.
//   - Name must be non-empty.
//   - Both dates must be YYYY-MM-DD.
//   - Check-in must come strictly before check-out.
func validateStay(stay domain.HotelStay) error {
	if stay.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	in, err := domain.ParseDate(stay.CheckIn)
	if err != nil {
		return fmt.Errorf("check_in: %w", err)
	}
	out, err := domain.ParseDate(stay.CheckOut)
	if err != nil {
		return fmt.Errorf("check_out: %w", err)
	}
	if !in.Before(out) {
		return fmt.Errorf("%w: check_in must be before check_out", domain.ErrValidation)
	}
	return nil
}
