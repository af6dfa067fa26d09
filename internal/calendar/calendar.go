// Package calendar resolves which hotel stay covers a date, classifies
// itinerary days for display, and lays itinerary and stays out on a month
// grid. Everything here is pure; callers pass in the data they hold.
package calendar

import (
	"fmt"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ActiveStay returns the stay whose half-open range [CheckIn, CheckOut)
// contains date. When stays overlap, the first match in slice order wins.
// Returns domain.ErrDateParse if date or any stay date is malformed.
func ActiveStay(date string, stays []domain.HotelStay) (domain.HotelStay, bool, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.HotelStay{}, false, fmt.Errorf("calendar.ActiveStay: %w", err)
	}
	for _, s := range stays {
		if err := checkStayDates(s); err != nil {
			return domain.HotelStay{}, false, fmt.Errorf("calendar.ActiveStay: stay %s: %w", s.ID, err)
		}
		// Canonical YYYY-MM-DD strings order the same way as the dates.
		if s.CheckIn <= date && date < s.CheckOut {
			return s, true, nil
		}
	}
	return domain.HotelStay{}, false, nil
}

// ClassifyDay returns the authored kind when the day carries one and falls
// back to ClassifyByText otherwise.
func ClassifyDay(day domain.ItineraryDay) domain.DayKind {
	if day.Kind.Valid() {
		return day.Kind
	}
	return ClassifyByText(day)
}

// ClassifyByText infers a day's kind from its wording. Base moves take
// priority over day trips.
func ClassifyByText(day domain.ItineraryDay) domain.DayKind {
	title := strings.ToLower(day.Title)
	if containsAny(title, "viagem para", "chegada em", "retorno para") {
		return domain.DayBaseMove
	}
	for _, ev := range day.Events {
		et := strings.ToLower(ev.Title)
		if strings.Contains(et, "check-in") {
			return domain.DayBaseMove
		}
		if ev.Type == domain.ActivityTransport && strings.Contains(et, "viagem para") {
			return domain.DayBaseMove
		}
	}
	if containsAny(title, "bate e volta", "dia de esqui") {
		return domain.DayTrip
	}
	return domain.DayPlain
}

// Overlaps lists every pair of stays that share at least one night, in
// slice order. It reports, it does not reject.
func Overlaps(stays []domain.HotelStay) ([]domain.StayOverlap, error) {
	for _, s := range stays {
		if err := checkStayDates(s); err != nil {
			return nil, fmt.Errorf("calendar.Overlaps: stay %s: %w", s.ID, err)
		}
	}
	out := []domain.StayOverlap{}
	for i := range stays {
		for j := i + 1; j < len(stays); j++ {
			a, b := stays[i], stays[j]
			if a.CheckIn < b.CheckOut && b.CheckIn < a.CheckOut {
				out = append(out, domain.StayOverlap{
					First:  a,
					Second: b,
					From:   max(a.CheckIn, b.CheckIn),
					Until:  min(a.CheckOut, b.CheckOut),
				})
			}
		}
	}
	return out, nil
}

// Nights returns the number of nights a stay covers.
func Nights(s domain.HotelStay) (int, error) {
	in, err := domain.ParseDate(s.CheckIn)
	if err != nil {
		return 0, fmt.Errorf("calendar.Nights: check-in: %w", err)
	}
	out, err := domain.ParseDate(s.CheckOut)
	if err != nil {
		return 0, fmt.Errorf("calendar.Nights: check-out: %w", err)
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// Conflicting returns the first stay in stays, other than candidate itself,
// that shares a night with candidate.
func Conflicting(candidate domain.HotelStay, stays []domain.HotelStay) (domain.HotelStay, bool) {
	for _, s := range stays {
		if s.ID == candidate.ID {
			continue
		}
		if candidate.CheckIn < s.CheckOut && s.CheckIn < candidate.CheckOut {
			return s, true
		}
	}
	return domain.HotelStay{}, false
}

func checkStayDates(s domain.HotelStay) error {
	if _, err := domain.ParseDate(s.CheckIn); err != nil {
		return err
	}
	if _, err := domain.ParseDate(s.CheckOut); err != nil {
		return err
	}
	return nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
