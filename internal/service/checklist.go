package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// CustomItemPrefix starts the id of every user-added checklist item.
const CustomItemPrefix = "custom-"

// ChecklistCatalog is the default packing list. *catalog.Catalog satisfies it.
type ChecklistCatalog interface {
	Checklist() []domain.ChecklistCategory
	HasCategory(title string) bool
	IsDefaultItem(id string) bool
}

// ChecklistService merges the default packing list with custom items and
// tracks check marks.
type ChecklistService struct {
	catalog ChecklistCatalog
	repo    repo.ChecklistRepo
}

// NewChecklistService constructs a ChecklistService.
func NewChecklistService(c ChecklistCatalog, r repo.ChecklistRepo) *ChecklistService {
	return &ChecklistService{catalog: c, repo: r}
}

// Get returns the merged checklist with progress.
func (s *ChecklistService) Get(ctx context.Context) (domain.Checklist, error) {
	custom, err := s.repo.ListCustomItems(ctx)
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.Get: %w", err)
	}
	checks, err := s.repo.Checks(ctx)
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.Get: %w", err)
	}
	return buildChecklist(s.catalog.Checklist(), custom, checks), nil
}

// AddItem appends a custom item to an existing category.
// Returns domain.ErrValidation for an empty label or unknown category.
func (s *ChecklistService) AddItem(ctx context.Context, category, label string) (domain.ChecklistItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.ChecklistItem{}, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	if !s.catalog.HasCategory(category) {
		return domain.ChecklistItem{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}
	item := domain.ChecklistItem{
		ID:       CustomItemPrefix + uuid.NewString(),
		Category: category,
		Label:    label,
		Custom:   true,
	}
	result, err := s.repo.AddItem(ctx, item)
	if err != nil {
		return domain.ChecklistItem{}, fmt.Errorf("service.ChecklistService.AddItem: %w", err)
	}
	return result, nil
}

// DeleteItem removes a custom item. Default items cannot be deleted.
func (s *ChecklistService) DeleteItem(ctx context.Context, id string) error {
	if s.catalog.IsDefaultItem(id) {
		return fmt.Errorf("%w: default item %q cannot be deleted", domain.ErrValidation, id)
	}
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("service.ChecklistService.DeleteItem: %w", err)
	}
	return nil
}

// SetCheck stores the check mark for an item.
// Returns domain.ErrNotFound if the item does not exist.
func (s *ChecklistService) SetCheck(ctx context.Context, id string, checked bool) error {
	if err := s.requireItem(ctx, id); err != nil {
		return fmt.Errorf("service.ChecklistService.SetCheck: %w", err)
	}
	if err := s.repo.SetCheck(ctx, id, checked); err != nil {
		return fmt.Errorf("service.ChecklistService.SetCheck: %w", err)
	}
	return nil
}

// Toggle flips the check mark for an item and returns the new state.
func (s *ChecklistService) Toggle(ctx context.Context, id string) (bool, error) {
	if err := s.requireItem(ctx, id); err != nil {
		return false, fmt.Errorf("service.ChecklistService.Toggle: %w", err)
	}
	checks, err := s.repo.Checks(ctx)
	if err != nil {
		return false, fmt.Errorf("service.ChecklistService.Toggle: %w", err)
	}
	next := !checks[id]
	if err := s.repo.SetCheck(ctx, id, next); err != nil {
		return false, fmt.Errorf("service.ChecklistService.Toggle: %w", err)
	}
	return next, nil
}

func (s *ChecklistService) requireItem(ctx context.Context, id string) error {
	if s.catalog.IsDefaultItem(id) {
		return nil
	}
	if strings.HasPrefix(id, CustomItemPrefix) {
		custom, err := s.repo.ListCustomItems(ctx)
		if err != nil {
			return err
		}
		for _, it := range custom {
			if it.ID == id {
				return nil
			}
		}
	}
	return fmt.Errorf("checklist item %q: %w", id, domain.ErrNotFound)
}

// buildChecklist appends custom items to their category, in insertion
// order, and counts progress. Custom items whose category is gone get a
// category of their own at the end.
func buildChecklist(defaults []domain.ChecklistCategory, custom []domain.ChecklistItem, checks map[string]bool) domain.Checklist {
	cats := make([]domain.ChecklistCategory, len(defaults))
	index := make(map[string]int, len(defaults))
	for i, c := range defaults {
		cats[i] = domain.ChecklistCategory{Title: c.Title, Items: append([]domain.ChecklistItem(nil), c.Items...)}
		index[c.Title] = i
	}
	for _, it := range custom {
		i, ok := index[it.Category]
		if !ok {
			i = len(cats)
			index[it.Category] = i
			cats = append(cats, domain.ChecklistCategory{Title: it.Category})
		}
		cats[i].Items = append(cats[i].Items, it)
	}

	out := domain.Checklist{
		Categories: make([]domain.CategoryProgress, 0, len(cats)),
		Checked:    map[string]bool{},
	}
	var checked, total int
	for _, c := range cats {
		n := 0
		for _, it := range c.Items {
			if checks[it.ID] {
				n++
				out.Checked[it.ID] = true
			}
		}
		if c.Items == nil {
			c.Items = []domain.ChecklistItem{}
		}
		out.Categories = append(out.Categories, domain.CategoryProgress{
			ChecklistCategory: c,
			Progress:          domain.NewProgress(n, len(c.Items)),
			Completed:         len(c.Items) > 0 && n == len(c.Items),
		})
		checked += n
		total += len(c.Items)
	}
	out.Progress = domain.NewProgress(checked, total)
	return out
}
