package bootstrap_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/bootstrap"
	"jobboard-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func TestBuildWiresHealthAndMetrics(t *testing.T) {
	app := buildTestApp(t)

	health := httptest.NewRecorder()
	app.Router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if health.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", health.Code)
	}
	if !strings.Contains(health.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body %s", health.Body.String())
	}

	metrics := httptest.NewRecorder()
	app.Router.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if metrics.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", metrics.Code)
	}
	if !strings.Contains(metrics.Body.String(), "resumes_uploaded_total") {
		t.Fatalf("expected counters in metrics body")
	}
}

func TestBuildSeedsDevJobs(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("X-User-Id", "user-1")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list struct {
		Items []struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"items"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) == 0 {
		t.Fatal("expected seeded dev jobs")
	}
	for _, job := range list.Items {
		if job.Status != "open" {
			t.Fatalf("seeded job %q not open", job.Title)
		}
	}
}

func TestBuildRejectsUnauthenticatedAPI(t *testing.T) {
	app := buildTestApp(t)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := bootstrap.Build(config.Config{
		Env:             "prod",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error when DATABASE_URL missing in prod")
	}
}
