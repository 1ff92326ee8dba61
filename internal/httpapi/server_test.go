package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noetic-labs/thesisd/internal/export"
	"github.com/noetic-labs/thesisd/internal/health"
	"github.com/noetic-labs/thesisd/internal/refdata"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

// testServer wires a full server against the embedded dataset.
func testServer(t *testing.T, cfg ServerConfig) *Server {
	t.Helper()
	logger := zerolog.Nop()

	dataset := refdata.Default()
	charts := thesis.DefaultCharts(dataset)
	catalog := thesis.NewCatalog(dataset, charts)
	builder := thesis.NewPlanBuilder(dataset, charts, thesis.DefaultInsights(), nil)
	composer := export.NewComposer(charts)
	exporter := export.NewExporter(builder, composer, nil, 8, logger)
	checker := health.NewChecker(logger)

	handlers := NewHandlers(exporter, catalog, builder, checker, 30*time.Second, logger)
	return NewServer(cfg, handlers, nil, logger)
}

// testApp creates a Fiber app with all routes for testing.
func testApp(t *testing.T) *fiber.App {
	t.Helper()
	return testServer(t, ServerConfig{ListenAddr: ":0"}).App()
}

func selections(ids ...string) string {
	parts := make([]string, 0, len(ids))
	for i, id := range ids {
		parts = append(parts, `{"id":"`+id+`","kind":"chart","title":"`+id+`","order":`+strconv.Itoa(i)+`,"selected":true}`)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestServer_HealthzEndpoint(t *testing.T) {
	app := testApp(t)

	req, _ := http.NewRequest("GET", "/healthz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_ReadyzEndpoint(t *testing.T) {
	app := testApp(t)

	req, _ := http.NewRequest("GET", "/readyz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Catalog(t *testing.T) {
	app := testApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/thesis/catalog", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body CatalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Items)

	// Nothing is selected on a fresh listing
	for _, item := range body.Items {
		assert.False(t, item.Selected, item.ID)
	}
}

func TestServer_Catalog_CategoryFilter(t *testing.T) {
	app := testApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/thesis/catalog?category=charts", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body CatalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Items)
	for _, item := range body.Items {
		assert.Equal(t, thesis.KindChart, item.Kind)
	}
}

func TestServer_Templates(t *testing.T) {
	app := testApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/thesis/templates", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body TemplatesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Templates, 4)
}

func TestServer_Score(t *testing.T) {
	app := testApp(t)

	body := `{"template":{"id":"custom"},"selections":` + selections("market-line") + `}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var score ScoreResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&score))
	assert.Equal(t, "custom", score.TemplateID)
	assert.Equal(t, 1.0, score.Compatibility.MatchRatio)
}

func TestServer_Plan(t *testing.T) {
	app := testApp(t)

	body := `{"template":{"id":"executive-summary"},"selections":` + selections("market-line", "capital-doughnut") + `}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var plan PlanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	// cover + summary + two charts
	require.Len(t, plan.Pages, 4)
	assert.Equal(t, thesis.CoverPageID, plan.Pages[0].ID)
	assert.Equal(t, thesis.SummaryPageID, plan.Pages[1].ID)
	assert.Equal(t, 4, plan.EstimatedPages)
}

func TestServer_Plan_UnknownTemplate(t *testing.T) {
	app := testApp(t)

	body := `{"template":{"id":"nope"},"selections":` + selections("market-line") + `}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "unknown template", e.Error)
}

func TestServer_Export_Document(t *testing.T) {
	app := testApp(t)

	body := `{"format":"document","template":{"id":"executive-summary"},"selections":` + selections("market-line") + `,"options":{}}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="noetic-2.0-thesis.pdf"`,
		resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestServer_Export_SlideDeck(t *testing.T) {
	app := testApp(t)

	body := `{"format":"slide-deck","template":{"id":"investor-pitch"},"selections":` + selections("market-line") + `,"options":{}}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="noetic-2.0-thesis.pptx"`,
		resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// zip local file header magic
	require.True(t, len(data) > 4)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestServer_Export_UnknownFormat(t *testing.T) {
	app := testApp(t)

	body := `{"format":"docx","template":{"id":"custom"},"selections":` + selections("market-line") + `}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "unknown format", e.Error)
}

func TestServer_Export_MissingSelections(t *testing.T) {
	app := testApp(t)

	body := `{"format":"document","template":{"id":"custom"},"selections":[]}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Export_MissingTemplate(t *testing.T) {
	app := testApp(t)

	body := `{"format":"document","selections":` + selections("market-line") + `,"options":{}}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "missing template", e.Error)
}

func TestServer_Export_MissingOptions(t *testing.T) {
	app := testApp(t)

	body := `{"format":"document","template":{"id":"custom"},"selections":` + selections("market-line") + `}`
	req, _ := http.NewRequest("POST", "/api/v1/thesis/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "missing options", e.Error)
}

func TestServer_TimeoutsApplied(t *testing.T) {
	srv := testServer(t, ServerConfig{
		ListenAddr:   ":0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 7 * time.Second,
	})

	cfg := srv.App().Config()
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 7*time.Second, cfg.WriteTimeout)
}

func TestServer_CORSHeaders(t *testing.T) {
	srv := testServer(t, ServerConfig{
		ListenAddr:  ":0",
		CORSOrigins: []string{"http://localhost:3000"},
	})

	req, _ := http.NewRequest("GET", "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000",
		resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Export_MethodNotAllowed(t *testing.T) {
	app := testApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/thesis/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
