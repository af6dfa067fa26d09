package catalog

import (
	"fmt"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/geo"
)

// validateAreas checks id uniqueness, node placement and that every edge
// endpoint names a node of the same area.
func validateAreas(areas []domain.Area) []error {
	var errs []error
	seen := make(map[string]bool, len(areas))
	for _, a := range areas {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("area %q: empty id", a.Title))
			continue
		}
		if seen[a.ID] {
			errs = append(errs, fmt.Errorf("area %q: duplicate id", a.ID))
		}
		seen[a.ID] = true

		nodes := make(map[string]bool, len(a.Nodes))
		for _, n := range a.Nodes {
			if n.ID == "" {
				errs = append(errs, fmt.Errorf("area %q: node %q has empty id", a.ID, n.Label))
				continue
			}
			if nodes[n.ID] {
				errs = append(errs, fmt.Errorf("area %q: duplicate node %q", a.ID, n.ID))
			}
			nodes[n.ID] = true
			if !n.Category.Valid() {
				errs = append(errs, fmt.Errorf("area %q: node %q: unknown category %q", a.ID, n.ID, n.Category))
			}
			switch n.LabelSide {
			case "", domain.LabelTop, domain.LabelBottom, domain.LabelLeft, domain.LabelRight:
			default:
				errs = append(errs, fmt.Errorf("area %q: node %q: unknown label side %q", a.ID, n.ID, n.LabelSide))
			}
			if !geo.Visible(n.Position()) {
				errs = append(errs, fmt.Errorf("area %q: node %q: position (%v,%v) outside 0-100", a.ID, n.ID, n.X, n.Y))
			}
		}

		for i, e := range a.Edges {
			if !nodes[e.From] {
				errs = append(errs, fmt.Errorf("area %q: edge %d: unknown from node %q", a.ID, i, e.From))
			}
			if !nodes[e.To] {
				errs = append(errs, fmt.Errorf("area %q: edge %d: unknown to node %q", a.ID, i, e.To))
			}
			switch e.Mode {
			case "", domain.EdgeWalk, domain.EdgeTrain, domain.EdgeSubway:
			default:
				errs = append(errs, fmt.Errorf("area %q: edge %d: unknown mode %q", a.ID, i, e.Mode))
			}
		}
	}
	return errs
}

// validateDays checks ids, dates in strictly ascending order, and events.
func validateDays(days []domain.ItineraryDay) []error {
	var errs []error
	dayIDs := make(map[int]bool, len(days))
	eventIDs := make(map[int]bool)
	prev := ""
	for _, d := range days {
		if dayIDs[d.ID] {
			errs = append(errs, fmt.Errorf("day %d: duplicate id", d.ID))
		}
		dayIDs[d.ID] = true

		if _, err := domain.ParseDate(d.Date); err != nil {
			errs = append(errs, fmt.Errorf("day %d: %w", d.ID, err))
		} else if d.Date <= prev {
			errs = append(errs, fmt.Errorf("day %d: date %s not after %s", d.ID, d.Date, prev))
		} else {
			prev = d.Date
		}
		if d.Kind != "" && !d.Kind.Valid() {
			errs = append(errs, fmt.Errorf("day %d: unknown kind %q", d.ID, d.Kind))
		}

		for _, ev := range d.Events {
			if eventIDs[ev.ID] {
				errs = append(errs, fmt.Errorf("day %d: duplicate event id %d", d.ID, ev.ID))
			}
			eventIDs[ev.ID] = true
			if !ev.Type.Valid() {
				errs = append(errs, fmt.Errorf("event %d: unknown type %q", ev.ID, ev.Type))
			}
			if !geo.ValidPoint(ev.Point) {
				errs = append(errs, fmt.Errorf("event %d: invalid coordinates %+v", ev.ID, ev.Point))
			}
		}
	}
	return errs
}

// validateChecklist checks category titles and item ids are unique.
func validateChecklist(cats []domain.ChecklistCategory) []error {
	var errs []error
	titles := make(map[string]bool, len(cats))
	items := make(map[string]bool)
	for _, c := range cats {
		if titles[c.Title] {
			errs = append(errs, fmt.Errorf("checklist: duplicate category %q", c.Title))
		}
		titles[c.Title] = true
		for _, it := range c.Items {
			if it.ID == "" || items[it.ID] {
				errs = append(errs, fmt.Errorf("checklist: category %q: missing or duplicate item id %q", c.Title, it.ID))
			}
			items[it.ID] = true
		}
	}
	return errs
}
