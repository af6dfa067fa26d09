package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// TxRunner runs fn against repositories bound to one transaction.
// *repo.Store satisfies it.
type TxRunner interface {
	InTx(ctx context.Context, fn func(repo.Repos) error) error
}

// BackupCatalog is what restore needs to know about the fixed data.
type BackupCatalog interface {
	IsDefaultItem(id string) bool
	Event(id int) (domain.ItineraryEvent, error)
}

// BackupService exports all user state as one document and merges such a
// document back in.
type BackupService struct {
	repos   repo.Repos
	tx      TxRunner
	catalog BackupCatalog
	now     func() time.Time
}

// NewBackupService constructs a BackupService. repos serves exports; tx
// serves restores.
func NewBackupService(repos repo.Repos, tx TxRunner, c BackupCatalog) *BackupService {
	return &BackupService{repos: repos, tx: tx, catalog: c, now: time.Now}
}

// suggestionExportPage is the page size used to drain the suggestion cache.
const suggestionExportPage = 100

// Export dumps every persisted entity.
func (s *BackupService) Export(ctx context.Context) (domain.Backup, error) {
	b := domain.Backup{SchemaVersion: domain.BackupSchemaVersion, ExportedAt: s.now().UTC()}

	var err error
	if b.Stays, err = s.repos.Stays.List(ctx); err != nil {
		return domain.Backup{}, fmt.Errorf("service.BackupService.Export: %w", err)
	}
	if b.CustomItems, err = s.repos.Checklist.ListCustomItems(ctx); err != nil {
		return domain.Backup{}, fmt.Errorf("service.BackupService.Export: %w", err)
	}
	if b.Checked, err = s.repos.Checklist.Checks(ctx); err != nil {
		return domain.Backup{}, fmt.Errorf("service.BackupService.Export: %w", err)
	}

	b.Suggestions = []domain.Suggestion{}
	for page := 1; ; page++ {
		items, total, err := s.repos.Suggestions.ListPaged(ctx, domain.PaginationParams{Page: page, Limit: suggestionExportPage})
		if err != nil {
			return domain.Backup{}, fmt.Errorf("service.BackupService.Export: %w", err)
		}
		b.Suggestions = append(b.Suggestions, items...)
		if len(items) < suggestionExportPage || int64(len(b.Suggestions)) >= total {
			break
		}
	}

	p, err := s.repos.Preferences.Get(ctx)
	switch {
	case err == nil:
		b.Preferences = &p
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Backup{}, fmt.Errorf("service.BackupService.Export: %w", err)
	}

	if b.Stays == nil {
		b.Stays = []domain.HotelStay{}
	}
	if b.CustomItems == nil {
		b.CustomItems = []domain.ChecklistItem{}
	}
	if b.Checked == nil {
		b.Checked = map[string]bool{}
	}
	return b, nil
}

// Import merges a backup document into storage inside one transaction.
// Entities are matched by key and overwritten; nothing is deleted.
//
// A document without schema_version is read as the legacy browser dump.
// Returns domain.ErrUnsupportedVersion for a newer schema and
// domain.ErrValidation for anything that does not decode or validate.
func (s *BackupService) Import(ctx context.Context, raw []byte) (domain.RestoreSummary, error) {
	var probe struct {
		SchemaVersion *int `json:"schema_version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return domain.RestoreSummary{}, fmt.Errorf("%w: backup is not a JSON object: %w", domain.ErrValidation, err)
	}

	var b domain.Backup
	switch {
	case probe.SchemaVersion == nil:
		legacy, err := migrateLegacy(raw, s.catalog)
		if err != nil {
			return domain.RestoreSummary{}, err
		}
		b = legacy
	case *probe.SchemaVersion > domain.BackupSchemaVersion:
		return domain.RestoreSummary{}, fmt.Errorf("%w: schema_version %d, this server reads up to %d",
			domain.ErrUnsupportedVersion, *probe.SchemaVersion, domain.BackupSchemaVersion)
	case *probe.SchemaVersion < 1:
		return domain.RestoreSummary{}, fmt.Errorf("%w: schema_version must be at least 1", domain.ErrValidation)
	default:
		if err := json.Unmarshal(raw, &b); err != nil {
			return domain.RestoreSummary{}, fmt.Errorf("%w: decode backup: %w", domain.ErrValidation, err)
		}
	}

	if err := s.validateBackup(&b); err != nil {
		return domain.RestoreSummary{}, err
	}

	sum := domain.RestoreSummary{SchemaVersion: b.SchemaVersion}
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		for _, st := range b.Stays {
			if _, err := r.Stays.Upsert(ctx, st); err != nil {
				return err
			}
			sum.Stays++
		}
		for _, it := range b.CustomItems {
			if _, err := r.Checklist.UpsertItem(ctx, it); err != nil {
				return err
			}
			sum.CustomItems++
		}
		for id, checked := range b.Checked {
			if err := r.Checklist.SetCheck(ctx, id, checked); err != nil {
				return err
			}
			sum.Checks++
		}
		for _, sg := range b.Suggestions {
			if _, err := r.Suggestions.Put(ctx, sg); err != nil {
				return err
			}
			sum.Suggestions++
		}
		if b.Preferences != nil {
			if _, err := r.Preferences.Put(ctx, *b.Preferences); err != nil {
				return err
			}
			sum.Preferences = true
		}
		return nil
	})
	if err != nil {
		return domain.RestoreSummary{}, fmt.Errorf("service.BackupService.Import: %w", err)
	}
	return sum, nil
}

// validateBackup checks every entity and fills in missing ids. Overlapping
// stays are accepted; GET /stays/overlaps reports them afterwards.
func (s *BackupService) validateBackup(b *domain.Backup) error {
	for i := range b.Stays {
		st := normalizeStay(b.Stays[i])
		if err := validateStay(st); err != nil {
			return fmt.Errorf("stays[%d]: %w", i, err)
		}
		if st.ID == uuid.Nil {
			st.ID = uuid.New()
		}
		b.Stays[i] = st
	}
	for i, it := range b.CustomItems {
		if !strings.HasPrefix(it.ID, CustomItemPrefix) {
			return fmt.Errorf("%w: checklist_items[%d]: id must start with %q", domain.ErrValidation, i, CustomItemPrefix)
		}
		if strings.TrimSpace(it.Label) == "" || strings.TrimSpace(it.Category) == "" {
			return fmt.Errorf("%w: checklist_items[%d]: label and category are required", domain.ErrValidation, i)
		}
	}
	for id := range b.Checked {
		if id == "" {
			return fmt.Errorf("%w: checklist_checked: empty item id", domain.ErrValidation)
		}
	}
	for i, sg := range b.Suggestions {
		if _, err := s.catalog.Event(sg.EventID); err != nil {
			return fmt.Errorf("%w: suggestions[%d]: unknown event %d", domain.ErrValidation, i, sg.EventID)
		}
		if strings.TrimSpace(sg.Body) == "" {
			return fmt.Errorf("%w: suggestions[%d]: empty body", domain.ErrValidation, i)
		}
	}
	if b.Preferences != nil {
		if err := validatePreferences(*b.Preferences); err != nil {
			return fmt.Errorf("preferences: %w", err)
		}
	}
	return nil
}
