// Package catalog holds the compiled-in trip data: the itinerary, the
// neighborhood area graphs and the default packing checklist.
// The data ships as YAML embedded in the binary, is validated once by Load,
// and is read-only afterwards, so a *Catalog is safe to share between
// goroutines.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/internal/domain"
)

//go:embed data/*.yaml
var embedded embed.FS

// Catalog is the validated, indexed view of the embedded data.
type Catalog struct {
	areas     []domain.Area
	areaIdx   map[string]int
	days      []domain.ItineraryDay
	dayIdx    map[int]int
	dateIdx   map[string]int
	eventIdx  map[int]eventRef
	checklist []domain.ChecklistCategory
	itemIdx   map[string]itemRef
}

type eventRef struct{ day, event int }

type itemRef struct{ category, item int }

type areasFile struct {
	Areas []domain.Area `yaml:"areas"`
}

type itineraryFile struct {
	Days []domain.ItineraryDay `yaml:"days"`
}

type checklistFile struct {
	Categories []domain.ChecklistCategory `yaml:"categories"`
}

// Load parses and validates the embedded data.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	return LoadFS(sub)
}

// MustLoad is Load for package-level initialisation and tests.
// The embedded data is fixed at build time, so a failure here is a bug.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFS reads areas.yaml, itinerary.yaml and checklist.yaml from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var (
		af  areasFile
		itf itineraryFile
		cf  checklistFile
	)
	for name, dst := range map[string]any{
		"areas.yaml":     &af,
		"itinerary.yaml": &itf,
		"checklist.yaml": &cf,
	} {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("catalog.LoadFS: %w", err)
		}
		if err := yaml.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("catalog.LoadFS: %s: %w", name, err)
		}
	}
	return New(af.Areas, itf.Days, cf.Categories)
}

// New builds a Catalog from already-decoded data, validating every
// invariant. All problems are reported together.
func New(areas []domain.Area, days []domain.ItineraryDay, checklist []domain.ChecklistCategory) (*Catalog, error) {
	var problems []error
	problems = append(problems, validateAreas(areas)...)
	problems = append(problems, validateDays(days)...)
	problems = append(problems, validateChecklist(checklist)...)
	if len(problems) > 0 {
		return nil, fmt.Errorf("catalog.New: %w: %w", domain.ErrDataInconsistency, errors.Join(problems...))
	}

	c := &Catalog{
		areas:     areas,
		areaIdx:   make(map[string]int, len(areas)),
		days:      days,
		dayIdx:    make(map[int]int, len(days)),
		dateIdx:   make(map[string]int, len(days)),
		eventIdx:  make(map[int]eventRef),
		checklist: checklist,
		itemIdx:   make(map[string]itemRef),
	}
	for i, a := range areas {
		c.areaIdx[a.ID] = i
	}
	for i, d := range days {
		c.dayIdx[d.ID] = i
		c.dateIdx[d.Date] = i
		for j, ev := range d.Events {
			c.eventIdx[ev.ID] = eventRef{day: i, event: j}
		}
	}
	for i, cat := range checklist {
		for j, it := range cat.Items {
			checklist[i].Items[j].Category = cat.Title
			c.itemIdx[it.ID] = itemRef{category: i, item: j}
		}
	}
	return c, nil
}

// ---- areas -----------------------------------------------------------------

// ListAreas returns every area in authored order.
func (c *Catalog) ListAreas() []domain.Area {
	out := make([]domain.Area, len(c.areas))
	for i, a := range c.areas {
		out[i] = cloneArea(a)
	}
	return out
}

// GetArea returns the area with the given id.
// Returns domain.ErrNotFound if there is none.
func (c *Catalog) GetArea(id string) (domain.Area, error) {
	i, ok := c.areaIdx[id]
	if !ok {
		return domain.Area{}, fmt.Errorf("catalog.GetArea: area %q: %w", id, domain.ErrNotFound)
	}
	return cloneArea(c.areas[i]), nil
}

// Node looks up a node by area and node id.
func (c *Catalog) Node(areaID, nodeID string) (domain.AreaNode, error) {
	a, err := c.GetArea(areaID)
	if err != nil {
		return domain.AreaNode{}, err
	}
	return ResolveNode(a, nodeID)
}

// ResolveNode finds nodeID among the nodes of a.
// Returns domain.ErrNotFound if the area has no such node.
func ResolveNode(a domain.Area, nodeID string) (domain.AreaNode, error) {
	for _, n := range a.Nodes {
		if n.ID == nodeID {
			return n, nil
		}
	}
	return domain.AreaNode{}, fmt.Errorf("catalog.ResolveNode: node %q in area %q: %w", nodeID, a.ID, domain.ErrNotFound)
}

// ResolveEdges pairs every edge of a with its endpoint positions.
func ResolveEdges(a domain.Area) ([]domain.ResolvedEdge, error) {
	out := make([]domain.ResolvedEdge, 0, len(a.Edges))
	for _, e := range a.Edges {
		from, err := ResolveNode(a, e.From)
		if err != nil {
			return nil, err
		}
		to, err := ResolveNode(a, e.To)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ResolvedEdge{AreaEdge: e, FromPos: from.Position(), ToPos: to.Position()})
	}
	return out, nil
}

// ---- itinerary -------------------------------------------------------------

// Days returns the itinerary in date order.
func (c *Catalog) Days() []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, len(c.days))
	for i, d := range c.days {
		out[i] = cloneDay(d)
	}
	return out
}

// Day returns the day with the given id.
func (c *Catalog) Day(id int) (domain.ItineraryDay, error) {
	i, ok := c.dayIdx[id]
	if !ok {
		return domain.ItineraryDay{}, fmt.Errorf("catalog.Day: day %d: %w", id, domain.ErrNotFound)
	}
	return cloneDay(c.days[i]), nil
}

// DayByDate returns the itinerary day scheduled on date, if any.
func (c *Catalog) DayByDate(date string) (domain.ItineraryDay, bool) {
	i, ok := c.dateIdx[date]
	if !ok {
		return domain.ItineraryDay{}, false
	}
	return cloneDay(c.days[i]), true
}

// Event returns the event with the given id.
func (c *Catalog) Event(id int) (domain.ItineraryEvent, error) {
	ref, ok := c.eventIdx[id]
	if !ok {
		return domain.ItineraryEvent{}, fmt.Errorf("catalog.Event: event %d: %w", id, domain.ErrNotFound)
	}
	return c.days[ref.day].Events[ref.event], nil
}

// Events returns every event of the trip in itinerary order.
func (c *Catalog) Events() []domain.ItineraryEvent {
	var out []domain.ItineraryEvent
	for _, d := range c.days {
		out = append(out, d.Events...)
	}
	return out
}

// ---- checklist -------------------------------------------------------------

// Checklist returns the default checklist categories.
func (c *Catalog) Checklist() []domain.ChecklistCategory {
	out := make([]domain.ChecklistCategory, len(c.checklist))
	for i, cat := range c.checklist {
		out[i] = domain.ChecklistCategory{Title: cat.Title, Items: slices.Clone(cat.Items)}
	}
	return out
}

// HasCategory reports whether a default category with this title exists.
func (c *Catalog) HasCategory(title string) bool {
	return slices.ContainsFunc(c.checklist, func(cat domain.ChecklistCategory) bool {
		return cat.Title == title
	})
}

// IsDefaultItem reports whether id belongs to the default checklist.
func (c *Catalog) IsDefaultItem(id string) bool {
	_, ok := c.itemIdx[id]
	return ok
}

func cloneArea(a domain.Area) domain.Area {
	a.Tips = slices.Clone(a.Tips)
	a.Nodes = slices.Clone(a.Nodes)
	a.Edges = slices.Clone(a.Edges)
	return a
}

func cloneDay(d domain.ItineraryDay) domain.ItineraryDay {
	d.Events = slices.Clone(d.Events)
	return d
}
