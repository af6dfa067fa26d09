package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/geo"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/service"
)

// Test doubles for the handler.*Servicer interfaces.
// Set only the method fields your test needs.

type mockStayServicer struct {
	create   func(ctx context.Context, stay domain.HotelStay) (domain.HotelStay, error)
	getByID  func(ctx context.Context, id uuid.UUID) (domain.HotelStay, error)
	list     func(ctx context.Context) ([]domain.HotelStay, error)
	update   func(ctx context.Context, stay domain.HotelStay) (domain.HotelStay, error)
	delete   func(ctx context.Context, id uuid.UUID) error
	overlaps func(ctx context.Context) ([]domain.StayOverlap, error)
}

func (m *mockStayServicer) Create(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	return m.create(ctx, s)
}
func (m *mockStayServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.HotelStay, error) {
	return m.getByID(ctx, id)
}
func (m *mockStayServicer) List(ctx context.Context) ([]domain.HotelStay, error) {
	return m.list(ctx)
}
func (m *mockStayServicer) Update(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	return m.update(ctx, s)
}
func (m *mockStayServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockStayServicer) Overlaps(ctx context.Context) ([]domain.StayOverlap, error) {
	return m.overlaps(ctx)
}

type mockItineraryServicer struct {
	days    func() []domain.ItineraryDay
	day     func(id int) (domain.ItineraryDay, error)
	event   func(id int) (domain.ItineraryEvent, error)
	route   func(dayID *int) (geo.Route, error)
	project func(p domain.GeoPoint) (service.Projection, error)
}

func (m *mockItineraryServicer) Days() []domain.ItineraryDay { return m.days() }
func (m *mockItineraryServicer) Day(id int) (domain.ItineraryDay, error) {
	return m.day(id)
}
func (m *mockItineraryServicer) Event(id int) (domain.ItineraryEvent, error) {
	return m.event(id)
}
func (m *mockItineraryServicer) Route(dayID *int) (geo.Route, error) { return m.route(dayID) }
func (m *mockItineraryServicer) Project(p domain.GeoPoint) (service.Projection, error) {
	return m.project(p)
}

type mockCalendarServicer struct {
	date  func(ctx context.Context, date string) (service.DateDetail, error)
	month func(ctx context.Context, year, month int) (calendar.Grid, error)
}

func (m *mockCalendarServicer) Date(ctx context.Context, date string) (service.DateDetail, error) {
	return m.date(ctx, date)
}
func (m *mockCalendarServicer) Month(ctx context.Context, year, month int) (calendar.Grid, error) {
	return m.month(ctx, year, month)
}

type mockChecklistServicer struct {
	get        func(ctx context.Context) (domain.Checklist, error)
	addItem    func(ctx context.Context, category, label string) (domain.ChecklistItem, error)
	deleteItem func(ctx context.Context, id string) error
	setCheck   func(ctx context.Context, id string, checked bool) error
	toggle     func(ctx context.Context, id string) (bool, error)
}

func (m *mockChecklistServicer) Get(ctx context.Context) (domain.Checklist, error) {
	return m.get(ctx)
}
func (m *mockChecklistServicer) AddItem(ctx context.Context, category, label string) (domain.ChecklistItem, error) {
	return m.addItem(ctx, category, label)
}
func (m *mockChecklistServicer) DeleteItem(ctx context.Context, id string) error {
	return m.deleteItem(ctx, id)
}
func (m *mockChecklistServicer) SetCheck(ctx context.Context, id string, checked bool) error {
	return m.setCheck(ctx, id, checked)
}
func (m *mockChecklistServicer) Toggle(ctx context.Context, id string) (bool, error) {
	return m.toggle(ctx, id)
}

type mockSuggestionServicer struct {
	get     func(ctx context.Context, eventID int) (domain.Suggestion, error)
	enhance func(ctx context.Context, eventID int) (domain.Suggestion, bool, error)
	delete  func(ctx context.Context, eventID int) error
	list    func(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Suggestion], error)
}

func (m *mockSuggestionServicer) Get(ctx context.Context, eventID int) (domain.Suggestion, error) {
	return m.get(ctx, eventID)
}
func (m *mockSuggestionServicer) Enhance(ctx context.Context, eventID int) (domain.Suggestion, bool, error) {
	return m.enhance(ctx, eventID)
}
func (m *mockSuggestionServicer) Delete(ctx context.Context, eventID int) error {
	return m.delete(ctx, eventID)
}
func (m *mockSuggestionServicer) List(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Suggestion], error) {
	return m.list(ctx, p)
}

type mockPreferenceServicer struct {
	get func(ctx context.Context) (domain.Preferences, error)
	put func(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

func (m *mockPreferenceServicer) Get(ctx context.Context) (domain.Preferences, error) {
	return m.get(ctx)
}
func (m *mockPreferenceServicer) Put(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	return m.put(ctx, p)
}

type mockBackupServicer struct {
	export     func(ctx context.Context) (domain.Backup, error)
	importFunc func(ctx context.Context, raw []byte) (domain.RestoreSummary, error)
}

func (m *mockBackupServicer) Export(ctx context.Context) (domain.Backup, error) {
	return m.export(ctx)
}
func (m *mockBackupServicer) Import(ctx context.Context, raw []byte) (domain.RestoreSummary, error) {
	return m.importFunc(ctx, raw)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.StayServicer       = (*mockStayServicer)(nil)
	_ handler.ItineraryServicer  = (*mockItineraryServicer)(nil)
	_ handler.CalendarServicer   = (*mockCalendarServicer)(nil)
	_ handler.ChecklistServicer  = (*mockChecklistServicer)(nil)
	_ handler.SuggestionServicer = (*mockSuggestionServicer)(nil)
	_ handler.PreferenceServicer = (*mockPreferenceServicer)(nil)
	_ handler.BackupServicer     = (*mockBackupServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

func newHTTPHandler(d handler.Deps) http.Handler {
	d.Logger = discardLogger()
	return handler.NewServer(d).Handler()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func jsonBodyRaw(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

// do sends one request through h and returns the recorded response.
func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// newChunkedRequest builds a request with no Content-Length, so body limits
// are only hit while reading.
func newChunkedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// assertError checks the status and the error code of a JSON error body,
// and returns the message for further assertions.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) string {
	t.Helper()
	require.Equal(t, status, rec.Code)
	body := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, code, body.Error.Code)
	return body.Error.Message
}
