package calendar

import (
	"fmt"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Cell is one date of a month grid.
type Cell struct {
	Date string `json:"date"`
	// Day and Kind are set only when the itinerary has an entry for Date.
	Day  *domain.ItineraryDay `json:"day,omitempty"`
	Kind domain.DayKind       `json:"kind,omitempty"`
	Stay *domain.HotelStay    `json:"stay,omitempty"`
}

// Grid is a month laid out Sunday-first.
type Grid struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	// LeadingBlanks is the weekday of the 1st, Sunday = 0.
	LeadingBlanks int    `json:"leading_blanks"`
	Cells         []Cell `json:"cells"`
}

// Month builds the grid for year/month. days need not be sorted; stays are
// resolved per date with ActiveStay.
func Month(year, month int, days []domain.ItineraryDay, stays []domain.HotelStay) (Grid, error) {
	if month < 1 || month > 12 {
		return Grid{}, fmt.Errorf("calendar.Month: %w: month %d out of range 1-12", domain.ErrValidation, month)
	}
	if year < 1 || year > 9999 {
		return Grid{}, fmt.Errorf("calendar.Month: %w: year %d out of range", domain.ErrValidation, year)
	}

	byDate := make(map[string]domain.ItineraryDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(0, 1, -1).Day()

	g := Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Cells:         make([]Cell, 0, n),
	}
	for i := range n {
		date := domain.FormatDate(first.AddDate(0, 0, i))
		c := Cell{Date: date}
		if d, ok := byDate[date]; ok {
			c.Day = &d
			c.Kind = ClassifyDay(d)
		}
		s, ok, err := ActiveStay(date, stays)
		if err != nil {
			return Grid{}, fmt.Errorf("calendar.Month: %w", err)
		}
		if ok {
			c.Stay = &s
		}
		g.Cells = append(g.Cells, c)
	}
	return g, nil
}
