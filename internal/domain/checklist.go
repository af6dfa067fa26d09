package domain

import "time"

// ChecklistItem is one packing-list entry. Default items have numeric ids
// ("1", "2", ...) from the embedded catalog; user items are "custom-<uuid>".
type ChecklistItem struct {
	ID       string    `json:"id" yaml:"id"`
	Category string    `json:"category,omitempty" yaml:"-"`
	Label    string    `json:"label" yaml:"label"`
	Custom   bool      `json:"custom" yaml:"-"`
	AddedAt  time.Time `json:"added_at,omitzero" yaml:"-"`
}

// ChecklistCategory groups items under a title.
type ChecklistCategory struct {
	Title string          `json:"title" yaml:"title"`
	Items []ChecklistItem `json:"items" yaml:"items"`
}

// Progress counts checked items against the total.
type Progress struct {
	Checked int     `json:"checked"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// NewProgress computes a Progress; Percent is 0 when total is 0.
func NewProgress(checked, total int) Progress {
	p := Progress{Checked: checked, Total: total}
	if total > 0 {
		p.Percent = float64(checked) / float64(total) * 100
	}
	return p
}

// CategoryProgress is a category with its completion state.
type CategoryProgress struct {
	ChecklistCategory
	Progress  Progress `json:"progress"`
	Completed bool     `json:"completed"`
}

// Checklist is the merged view: categories, check marks and progress.
type Checklist struct {
	Categories []CategoryProgress `json:"categories"`
	Checked    map[string]bool    `json:"checked"`
	Progress   Progress           `json:"progress"`
}
