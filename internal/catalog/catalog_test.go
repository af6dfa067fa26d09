package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/catalog"
	"github.com/pkordes/trip-planner/internal/domain"
)

func TestLoad_EmbeddedDataIsValid(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	assert.Len(t, c.ListAreas(), 8)
	assert.Len(t, c.Days(), 20)
	assert.Len(t, c.Checklist(), 5)
}

// TestAreas_ReferentialIntegrity walks every edge of every area and checks
// both endpoints resolve inside the same area.
func TestAreas_ReferentialIntegrity(t *testing.T) {
	c := catalog.MustLoad()
	for _, a := range c.ListAreas() {
		ids := make(map[string]bool, len(a.Nodes))
		for _, n := range a.Nodes {
			ids[n.ID] = true
		}
		for _, e := range a.Edges {
			assert.True(t, ids[e.From], "area %s: edge from %q dangles", a.ID, e.From)
			assert.True(t, ids[e.To], "area %s: edge to %q dangles", a.ID, e.To)
		}
	}
}

func TestListAreas_Order(t *testing.T) {
	c := catalog.MustLoad()
	var ids []string
	for _, a := range c.ListAreas() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"akihabara", "asakusa", "harajuku", "shibuya", "shinjuku", "ueno", "ginza", "odaiba"}, ids)
}

func TestGetArea_Akihabara(t *testing.T) {
	c := catalog.MustLoad()

	a, err := c.GetArea("akihabara")
	require.NoError(t, err)

	n, err := catalog.ResolveNode(a, "akihabara_st")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeStation, n.Category)

	var touches bool
	for _, e := range a.Edges {
		if e.From == "akihabara_st" || e.To == "akihabara_st" {
			touches = true
		}
	}
	assert.True(t, touches, "expected an edge referencing akihabara_st")
}

func TestGetArea_NotFound(t *testing.T) {
	_, err := catalog.MustLoad().GetArea("atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNode_NotFound(t *testing.T) {
	c := catalog.MustLoad()

	_, err := c.Node("akihabara", "sensoji")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Node("nowhere", "akihabara_st")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveEdges_Positions(t *testing.T) {
	a, err := catalog.MustLoad().GetArea("akihabara")
	require.NoError(t, err)

	edges, err := catalog.ResolveEdges(a)
	require.NoError(t, err)
	require.Len(t, edges, len(a.Edges))

	// suehirocho_st (50,10) -> kanda_myojin (20,10)
	assert.Equal(t, domain.ProjectedPosition{X: 50, Y: 10}, edges[0].FromPos)
	assert.Equal(t, domain.ProjectedPosition{X: 20, Y: 10}, edges[0].ToPos)
}

func TestGetArea_ReturnsCopy(t *testing.T) {
	c := catalog.MustLoad()
	a, err := c.GetArea("ueno")
	require.NoError(t, err)

	a.Nodes[0].Label = "changed"

	again, err := c.GetArea("ueno")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Nodes[0].Label)
}

func TestDays_LookupsAgree(t *testing.T) {
	c := catalog.MustLoad()

	d, err := c.Day(9)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-04", d.Date)
	assert.Equal(t, "Viagem para Quioto", d.Title)

	byDate, ok := c.DayByDate("2026-01-04")
	require.True(t, ok)
	assert.Equal(t, d.ID, byDate.ID)

	_, ok = c.DayByDate("2026-02-01")
	assert.False(t, ok)

	_, err = c.Day(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEvent_Lookup(t *testing.T) {
	c := catalog.MustLoad()

	ev, err := c.Event(1102)
	require.NoError(t, err)
	assert.Equal(t, "Viagem para Osaka", ev.Title)
	assert.Equal(t, domain.ActivityTransport, ev.Type)

	_, err = c.Event(1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, c.Events(), 45)
}

func TestChecklist_DefaultItems(t *testing.T) {
	c := catalog.MustLoad()
	assert.True(t, c.IsDefaultItem("1"))
	assert.False(t, c.IsDefaultItem("custom-x"))
	assert.True(t, c.HasCategory("Eletrônicos"))
	assert.False(t, c.HasCategory("Snacks"))
}

func TestNew_RejectsDanglingEdge(t *testing.T) {
	areas := []domain.Area{{
		ID:    "tiny",
		Nodes: []domain.AreaNode{{ID: "a", X: 10, Y: 10, Category: domain.NodeShop}},
		Edges: []domain.AreaEdge{{From: "a", To: "ghost"}},
	}}

	_, err := catalog.New(areas, nil, nil)

	require.ErrorIs(t, err, domain.ErrDataInconsistency)
	assert.ErrorContains(t, err, `unknown to node "ghost"`)
}

func TestNew_RejectsBadDayData(t *testing.T) {
	days := []domain.ItineraryDay{
		{ID: 1, Date: "2026-01-02"},
		{ID: 2, Date: "2026-01-01"},
		{ID: 3, Date: "02/01/2026"},
		{ID: 4, Date: "2026-01-05", Kind: "holiday", Events: []domain.ItineraryEvent{
			{ID: 7, Type: "teleport", Point: domain.GeoPoint{Latitude: 120}},
		}},
	}

	_, err := catalog.New(nil, days, nil)

	require.ErrorIs(t, err, domain.ErrDataInconsistency)
	for _, want := range []string{"not after", "not a YYYY-MM-DD date", "unknown kind", "unknown type", "invalid coordinates"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestLoadFS_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{"areas.yaml": {Data: []byte("areas: []\n")}}

	_, err := catalog.LoadFS(fsys)

	assert.Error(t, err)
}

func TestLoadFS_Minimal(t *testing.T) {
	fsys := fstest.MapFS{
		"areas.yaml":     {Data: []byte("areas: []\n")},
		"itinerary.yaml": {Data: []byte("days:\n  - id: 1\n    date: '2026-01-01'\n    title: Start\n    events: []\n")},
		"checklist.yaml": {Data: []byte("categories: []\n")},
	}

	c, err := catalog.LoadFS(fsys)

	require.NoError(t, err)
	assert.Len(t, c.Days(), 1)
}
