package domain

import "time"

// BackupSchemaVersion is the version written into every exported backup.
// Bump it when the document shape changes and teach the restore path to
// migrate the older form.
const BackupSchemaVersion = 1

// Backup is a full dump of user-mutable state.
// SchemaVersion 0 (absent) denotes the legacy flat key/value browser dump,
// which is migrated on restore.
type Backup struct {
	SchemaVersion int             `json:"schema_version"`
	ExportedAt    time.Time       `json:"exported_at"`
	Stays         []HotelStay     `json:"stays"`
	CustomItems   []ChecklistItem `json:"checklist_items"`
	Checked       map[string]bool `json:"checklist_checked"`
	Suggestions   []Suggestion    `json:"suggestions"`
	Preferences   *Preferences    `json:"preferences,omitempty"`
}

// RestoreSummary counts what a restore merged.
type RestoreSummary struct {
	SchemaVersion int  `json:"schema_version"`
	Stays         int  `json:"stays"`
	CustomItems   int  `json:"checklist_items"`
	Checks        int  `json:"checklist_checked"`
	Suggestions   int  `json:"suggestions"`
	Preferences   bool `json:"preferences"`
}
