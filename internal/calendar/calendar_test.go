package calendar_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/catalog"
	"github.com/pkordes/trip-planner/internal/domain"
)

func stay(name, in, out string) domain.HotelStay {
	return domain.HotelStay{ID: uuid.New(), Name: name, CheckIn: in, CheckOut: out}
}

func TestActiveStay_HalfOpen(t *testing.T) {
	kyoto := stay("Kyoto Inn", "2026-01-04", "2026-01-06")
	stays := []domain.HotelStay{kyoto}

	tests := []struct {
		date  string
		found bool
	}{
		{"2026-01-03", false},
		{"2026-01-04", true},
		{"2026-01-05", true},
		{"2026-01-06", false},
	}
	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			got, ok, err := calendar.ActiveStay(tc.date, stays)
			require.NoError(t, err)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, kyoto.ID, got.ID)
			}
		})
	}
}

func TestActiveStay_FirstMatchWins(t *testing.T) {
	a := stay("A", "2026-01-01", "2026-01-05")
	b := stay("B", "2026-01-03", "2026-01-08")

	got, ok, err := calendar.ActiveStay("2026-01-04", []domain.HotelStay{a, b})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)

	got, ok, err = calendar.ActiveStay("2026-01-04", []domain.HotelStay{b, a})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)
}

func TestActiveStay_Empty(t *testing.T) {
	_, ok, err := calendar.ActiveStay("2026-01-04", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestActiveStay_MalformedDate(t *testing.T) {
	stays := []domain.HotelStay{stay("A", "2026-01-01", "2026-01-05")}

	for _, date := range []string{"", "04/01/2026", "2026-1-4", "2026-02-30"} {
		_, _, err := calendar.ActiveStay(date, stays)
		assert.ErrorIs(t, err, domain.ErrDateParse, date)
	}

	_, _, err := calendar.ActiveStay("2026-01-02", []domain.HotelStay{stay("bad", "tomorrow", "2026-01-05")})
	assert.ErrorIs(t, err, domain.ErrDateParse)
}

func TestClassifyByText(t *testing.T) {
	tests := []struct {
		name string
		day  domain.ItineraryDay
		want domain.DayKind
	}{
		{
			name: "base move beats day trip event",
			day: domain.ItineraryDay{Title: "Viagem para Quioto", Events: []domain.ItineraryEvent{
				{Title: "Bate e volta para Nara", Type: domain.ActivitySightseeing},
			}},
			want: domain.DayBaseMove,
		},
		{
			name: "day trip",
			day:  domain.ItineraryDay{Title: "Bate e volta para Hiroshima"},
			want: domain.DayTrip,
		},
		{
			name: "plain",
			day:  domain.ItineraryDay{Title: "Dia Livre em Tóquio"},
			want: domain.DayPlain,
		},
		{
			name: "check-in event",
			day: domain.ItineraryDay{Title: "Castelo", Events: []domain.ItineraryEvent{
				{Title: "Check-in no hotel", Type: domain.ActivityAccommodation},
			}},
			want: domain.DayBaseMove,
		},
		{
			name: "transport event moving base",
			day: domain.ItineraryDay{Title: "Castelo de Quioto e Osaka", Events: []domain.ItineraryEvent{
				{Title: "Viagem para Osaka", Type: domain.ActivityTransport},
			}},
			want: domain.DayBaseMove,
		},
		{
			name: "non-transport event mentioning a trip",
			day: domain.ItineraryDay{Title: "Museus", Events: []domain.ItineraryEvent{
				{Title: "Viagem para o passado", Type: domain.ActivitySightseeing},
			}},
			want: domain.DayPlain,
		},
		{
			name: "ski day",
			day:  domain.ItineraryDay{Title: "Dia de Esqui em Niigata"},
			want: domain.DayTrip,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calendar.ClassifyByText(tc.day))
		})
	}
}

func TestClassifyDay_AuthoredKindWins(t *testing.T) {
	day := domain.ItineraryDay{Title: "Bate e volta para Kobe", Kind: domain.DayPlain}
	assert.Equal(t, domain.DayPlain, calendar.ClassifyDay(day))

	day.Kind = ""
	assert.Equal(t, domain.DayTrip, calendar.ClassifyDay(day))
}

// The itinerary data carries authored kinds; they must agree with what the
// wording implies so either source gives the same calendar.
func TestClassifyDay_CatalogKindsMatchText(t *testing.T) {
	for _, d := range catalog.MustLoad().Days() {
		assert.Equal(t, calendar.ClassifyByText(d), calendar.ClassifyDay(d), "day %d %q", d.ID, d.Title)
	}
}

func TestClassifyDay_Idempotent(t *testing.T) {
	d := domain.ItineraryDay{Title: "Retorno para Tóquio"}
	first := calendar.ClassifyDay(d)
	assert.Equal(t, first, calendar.ClassifyDay(d))
	assert.Equal(t, domain.DayBaseMove, first)
}

func TestOverlaps(t *testing.T) {
	a := stay("A", "2026-01-01", "2026-01-05")
	b := stay("B", "2026-01-04", "2026-01-08")
	c := stay("C", "2026-01-08", "2026-01-10") // starts on B's checkout day

	got, err := calendar.Overlaps([]domain.HotelStay{a, b, c})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].First.Name)
	assert.Equal(t, "B", got[0].Second.Name)
	assert.Equal(t, "2026-01-04", got[0].From)
	assert.Equal(t, "2026-01-05", got[0].Until)
}

func TestOverlaps_None(t *testing.T) {
	got, err := calendar.Overlaps(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConflicting_IgnoresSelf(t *testing.T) {
	a := stay("A", "2026-01-01", "2026-01-05")
	b := stay("B", "2026-01-05", "2026-01-08")

	_, clash := calendar.Conflicting(a, []domain.HotelStay{a, b})
	assert.False(t, clash)

	moved := a
	moved.CheckOut = "2026-01-06"
	got, clash := calendar.Conflicting(moved, []domain.HotelStay{a, b})
	assert.True(t, clash)
	assert.Equal(t, "B", got.Name)
}

func TestNights(t *testing.T) {
	n, err := calendar.Nights(stay("A", "2025-12-30", "2026-01-04"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = calendar.Nights(stay("A", "2025-12-30", "soon"))
	assert.ErrorIs(t, err, domain.ErrDateParse)
}

func TestMonth_January2026(t *testing.T) {
	c := catalog.MustLoad()
	kyoto := stay("Kyoto Inn", "2026-01-04", "2026-01-06")

	g, err := calendar.Month(2026, 1, c.Days(), []domain.HotelStay{kyoto})

	require.NoError(t, err)
	assert.Equal(t, 4, g.LeadingBlanks) // 2026-01-01 is a Thursday
	require.Len(t, g.Cells, 31)
	assert.Equal(t, "2026-01-01", g.Cells[0].Date)
	assert.Equal(t, "2026-01-31", g.Cells[30].Date)

	jan4 := g.Cells[3]
	require.NotNil(t, jan4.Day)
	assert.Equal(t, "Viagem para Quioto", jan4.Day.Title)
	assert.Equal(t, domain.DayBaseMove, jan4.Kind)
	require.NotNil(t, jan4.Stay)
	assert.Equal(t, kyoto.ID, jan4.Stay.ID)

	assert.Nil(t, g.Cells[5].Stay) // checkout day
	assert.Nil(t, g.Cells[30].Day)
	assert.Empty(t, g.Cells[30].Kind)
}

func TestMonth_February(t *testing.T) {
	g, err := calendar.Month(2028, 2, nil, nil)
	require.NoError(t, err)
	assert.Len(t, g.Cells, 29)
	assert.Equal(t, 2, g.LeadingBlanks) // 2028-02-01 is a Tuesday
}

func TestMonth_OutOfRange(t *testing.T) {
	_, err := calendar.Month(2026, 13, nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
