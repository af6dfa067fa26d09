package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockStayRepo struct {
	create  func(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.HotelStay, error)
	list    func(ctx context.Context) ([]domain.HotelStay, error)
	update  func(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error)
	delete  func(ctx context.Context, id uuid.UUID) error
	upsert  func(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error)
}

func (m *mockStayRepo) Create(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	return m.create(ctx, s)
}
func (m *mockStayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.HotelStay, error) {
	return m.getByID(ctx, id)
}
func (m *mockStayRepo) List(ctx context.Context) ([]domain.HotelStay, error) {
	return m.list(ctx)
}
func (m *mockStayRepo) Update(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	return m.update(ctx, s)
}
func (m *mockStayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockStayRepo) Upsert(ctx context.Context, s domain.HotelStay) (domain.HotelStay, error) {
	return m.upsert(ctx, s)
}

var _ repo.StayRepo = (*mockStayRepo)(nil)

type mockChecklistRepo struct {
	listCustomItems func(ctx context.Context) ([]domain.ChecklistItem, error)
	addItem         func(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)
	upsertItem      func(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error)
	deleteItem      func(ctx context.Context, id string) error
	checks          func(ctx context.Context) (map[string]bool, error)
	setCheck        func(ctx context.Context, itemID string, checked bool) error
}

func (m *mockChecklistRepo) ListCustomItems(ctx context.Context) ([]domain.ChecklistItem, error) {
	return m.listCustomItems(ctx)
}
func (m *mockChecklistRepo) AddItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	return m.addItem(ctx, item)
}
func (m *mockChecklistRepo) UpsertItem(ctx context.Context, item domain.ChecklistItem) (domain.ChecklistItem, error) {
	return m.upsertItem(ctx, item)
}
func (m *mockChecklistRepo) DeleteItem(ctx context.Context, id string) error {
	return m.deleteItem(ctx, id)
}
func (m *mockChecklistRepo) Checks(ctx context.Context) (map[string]bool, error) {
	return m.checks(ctx)
}
func (m *mockChecklistRepo) SetCheck(ctx context.Context, itemID string, checked bool) error {
	return m.setCheck(ctx, itemID, checked)
}

var _ repo.ChecklistRepo = (*mockChecklistRepo)(nil)

type mockSuggestionRepo struct {
	get       func(ctx context.Context, eventID int) (domain.Suggestion, error)
	put       func(ctx context.Context, s domain.Suggestion) (domain.Suggestion, error)
	delete    func(ctx context.Context, eventID int) error
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Suggestion, int64, error)
}

func (m *mockSuggestionRepo) Get(ctx context.Context, eventID int) (domain.Suggestion, error) {
	return m.get(ctx, eventID)
}
func (m *mockSuggestionRepo) Put(ctx context.Context, s domain.Suggestion) (domain.Suggestion, error) {
	return m.put(ctx, s)
}
func (m *mockSuggestionRepo) Delete(ctx context.Context, eventID int) error {
	return m.delete(ctx, eventID)
}
func (m *mockSuggestionRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Suggestion, int64, error) {
	return m.listPaged(ctx, p)
}

var _ repo.SuggestionRepo = (*mockSuggestionRepo)(nil)

type mockPreferenceRepo struct {
	get func(ctx context.Context) (domain.Preferences, error)
	put func(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

func (m *mockPreferenceRepo) Get(ctx context.Context) (domain.Preferences, error) {
	return m.get(ctx)
}
func (m *mockPreferenceRepo) Put(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	return m.put(ctx, p)
}

var _ repo.PreferenceRepo = (*mockPreferenceRepo)(nil)

type mockGenerator struct {
	generate func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return m.generate(ctx, prompt)
}

// inlineTx runs fn directly against fixed repos; commit and rollback are
// not modelled.
type inlineTx struct {
	repos repo.Repos
	calls int
}

func (t *inlineTx) InTx(_ context.Context, fn func(repo.Repos) error) error {
	t.calls++
	return fn(t.repos)
}
