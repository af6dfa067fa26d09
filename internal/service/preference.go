package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// PreferenceService reads and writes the view state.
type PreferenceService struct {
	repo repo.PreferenceRepo
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(r repo.PreferenceRepo) *PreferenceService {
	return &PreferenceService{repo: r}
}

// Get returns the stored preferences, or the defaults before the first save.
func (s *PreferenceService) Get(ctx context.Context) (domain.Preferences, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Get: %w", err)
	}
	return p, nil
}

// Put validates and stores p. Draft fields are stored as typed.
func (s *PreferenceService) Put(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	if err := validatePreferences(p); err != nil {
		return domain.Preferences{}, err
	}
	result, err := s.repo.Put(ctx, p)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Put: %w", err)
	}
	return result, nil
}

func validatePreferences(p domain.Preferences) error {
	if !p.Theme.Valid() {
		return fmt.Errorf("%w: theme must be light or dark", domain.ErrValidation)
	}
	if !p.ActiveTab.Valid() {
		return fmt.Errorf("%w: unknown tab %q", domain.ErrValidation, p.ActiveTab)
	}
	return nil
}
