package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Keys of the flat browser-storage dump that predates versioned backups.
const (
	legacyHotelsKey     = "japanTripHotels"
	legacyChecklistKey  = "japanTripChecklistData"
	legacyCheckedKey    = "japanTripChecklistChecked"
	legacyThemeKey      = "theme"
	legacySuggestionKey = "ai_suggestion_"
)

// legacyNamespace seeds the UUIDs given to legacy hotel ids, so restoring
// the same dump twice updates rather than duplicates.
var legacyNamespace = uuid.MustParse("8f1d2c7e-5b0a-4f5e-9a57-3c2b1e0d6a41")

type legacyHotel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type legacyCategory struct {
	Title string `json:"title"`
	Items []struct {
		ID    legacyID `json:"id"`
		Label string   `json:"label"`
	} `json:"items"`
}

// legacyID accepts both numeric and string ids.
type legacyID string

func (id *legacyID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = legacyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = legacyID(n.String())
	return nil
}

// migrateLegacy converts the flat key/value dump into a Backup. Values may
// be JSON-encoded strings, as browser storage holds them, or inline JSON.
// Unknown keys are ignored.
func migrateLegacy(raw []byte, c BackupCatalog) (domain.Backup, error) {
	var kv map[string]json.RawMessage
	if err := json.Unmarshal(raw, &kv); err != nil {
		return domain.Backup{}, fmt.Errorf("%w: legacy backup: %w", domain.ErrValidation, err)
	}

	b := domain.Backup{
		Stays:       []domain.HotelStay{},
		CustomItems: []domain.ChecklistItem{},
		Checked:     map[string]bool{},
		Suggestions: []domain.Suggestion{},
	}

	if v, ok := kv[legacyHotelsKey]; ok {
		var hotels []legacyHotel
		if err := decodeLegacy(v, &hotels); err != nil {
			return domain.Backup{}, fmt.Errorf("%w: %s: %w", domain.ErrValidation, legacyHotelsKey, err)
		}
		for _, h := range hotels {
			b.Stays = append(b.Stays, domain.HotelStay{
				ID:       legacyStayID(h.ID),
				Name:     h.Name,
				Address:  h.Address,
				CheckIn:  h.CheckIn,
				CheckOut: h.CheckOut,
			})
		}
	}

	// Items the old client added got bare ids; they are renamed into the
	// custom- space and their check marks follow them.
	rename := map[string]string{}
	if v, ok := kv[legacyChecklistKey]; ok {
		var cats []legacyCategory
		if err := decodeLegacy(v, &cats); err != nil {
			return domain.Backup{}, fmt.Errorf("%w: %s: %w", domain.ErrValidation, legacyChecklistKey, err)
		}
		for _, cat := range cats {
			for _, it := range cat.Items {
				id := string(it.ID)
				if c.IsDefaultItem(id) {
					continue
				}
				newID := id
				if !strings.HasPrefix(id, CustomItemPrefix) {
					newID = CustomItemPrefix + id
				}
				rename[id] = newID
				b.CustomItems = append(b.CustomItems, domain.ChecklistItem{
					ID:       newID,
					Category: cat.Title,
					Label:    it.Label,
					Custom:   true,
				})
			}
		}
	}

	if v, ok := kv[legacyCheckedKey]; ok {
		var checked map[string]bool
		if err := decodeLegacy(v, &checked); err != nil {
			return domain.Backup{}, fmt.Errorf("%w: %s: %w", domain.ErrValidation, legacyCheckedKey, err)
		}
		for id, on := range checked {
			if newID, ok := rename[id]; ok {
				id = newID
			}
			b.Checked[id] = on
		}
	}

	if v, ok := kv[legacyThemeKey]; ok {
		theme := domain.Theme(legacyText(v))
		if theme.Valid() {
			p := domain.DefaultPreferences()
			p.Theme = theme
			b.Preferences = &p
		}
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		if strings.HasPrefix(k, legacySuggestionKey) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		id, err := strconv.Atoi(strings.TrimPrefix(k, legacySuggestionKey))
		if err != nil {
			return domain.Backup{}, fmt.Errorf("%w: %s: event id is not a number", domain.ErrValidation, k)
		}
		b.Suggestions = append(b.Suggestions, domain.Suggestion{EventID: id, Body: string(legacyText(kv[k]))})
	}

	return b, nil
}

// legacyText unwraps a value that was stored as a JSON string.
func legacyText(v json.RawMessage) []byte {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return []byte(s)
	}
	return v
}

// decodeLegacy decodes v, unwrapping one level of string encoding first.
func decodeLegacy(v json.RawMessage, dst any) error {
	return json.Unmarshal(legacyText(v), dst)
}

func legacyStayID(id string) uuid.UUID {
	if u, err := uuid.Parse(id); err == nil {
		return u
	}
	return uuid.NewSHA1(legacyNamespace, []byte(legacyHotelsKey+":"+id))
}
