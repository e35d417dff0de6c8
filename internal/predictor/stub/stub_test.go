package stub

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/piwi3910/FurniLayout/internal/ingest"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	Register(app, NewPlacer(model.DefaultSettings()))
	return app
}

func post(t *testing.T, app *fiber.App, body []byte) (*http.Response, predictor.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, predictor.PredictPath, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out predictor.Response
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

func TestPredict_PlacesWithoutOverlap(t *testing.T) {
	cat := model.DefaultCatalog()
	floors := model.DefaultFloors()
	body, _ := json.Marshal(predictor.Request{
		Items:         []model.CatalogEntry{*cat.FindByID("1"), *cat.FindByID("4"), *cat.FindByID("7"), *cat.FindByID("13"), *cat.FindByID("14")},
		RoomType:      model.RoomLiving,
		FloorGeometry: floors[3],
	})

	resp, out := post(t, testApp(), body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, predictor.StatusSuccess, out.Status)
	assert.Equal(t, ModelName, out.ModelUsed)
	require.Len(t, out.Data, 5)
	assert.Equal(t, ZoneWall, out.Data[0].Zone)
	assert.Equal(t, ZoneCorner, out.Data[2].Zone)

	res := ingest.Process(out, nil, model.DefaultSettings())
	assert.Equal(t, 0, res.Report.CollisionCount)
	assert.Equal(t, 0, res.Fix.Passes, "stub output needs no repair")

	for _, it := range res.Items {
		for _, ob := range floors[3].Obstacles {
			assert.False(t, it.Overlaps(ob.Rect), "%s overlaps %s", it.Name, ob.Name)
		}
	}
}

func TestPredict_RejectsBadRequests(t *testing.T) {
	app := testApp()

	resp, out := post(t, app, []byte("{"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, predictor.StatusError, out.Status)

	resp, out = post(t, app, []byte(`{"items":[]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no items to place", out.Message)
}

func TestHealthRoutes(t *testing.T) {
	app := testApp()
	for _, path := range []string{"/health/live", "/health/ready", "/api/status"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestZoneFor(t *testing.T) {
	assert.Equal(t, ZoneCorner, ZoneFor(model.CatalogEntry{Category: model.CategoryDecoration}))
	assert.Equal(t, ZoneWall, ZoneFor(model.CatalogEntry{Category: model.CategoryLiving, Width: 260}))
	assert.Equal(t, ZoneCenter, ZoneFor(model.CatalogEntry{Category: model.CategoryLiving, Width: 90}))
	assert.Equal(t, ZoneCenter, ZoneFor(model.CatalogEntry{Category: model.CategoryDining, Width: 240}))
}

func TestPlace_SkipsItemsThatDoNotFit(t *testing.T) {
	p := NewPlacer(model.DefaultSettings())
	out := p.Place(predictor.Request{
		Items: []model.CatalogEntry{{ID: "x", Name: "Huge", Width: 5000, Depth: 5000, Category: model.CategoryLiving}},
	})
	assert.Empty(t, out)
}
