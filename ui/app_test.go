package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	marineMetric = "Marine protected areas (% of territorial waters)"
	ohiMetric    = "Ocean Health Index (score)"
)

// newTestApp builds an app over a temp data directory holding two of the five
// indicator files.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()

	marine := "Entity,Code,Year," + marineMetric + "\n" +
		"Brazil,BRA,2000,10\n" +
		"Brazil,BRA,2010,15\n" +
		"Chile,CHL,2000,8\n" +
		"Chile,CHL,2010,12\n"
	ohi := "Entity,Code,Year," + ohiMetric + "\n" +
		"Brazil,BRA,2000,60\n" +
		"Brazil,BRA,2010,70\n" +
		"Chile,CHL,2000,55\n"

	if err := os.WriteFile(filepath.Join(dir, "marine-protected-areas.csv"), []byte(marine), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ocean-health-index.csv"), []byte(ohi), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := NewApp(Config{Port: "0", DataDir: dir})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

func TestDashboard_RendersStats(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Brazil", "Chile", "Exploratory Analysis", "2000"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboard_UnknownIndicatorIs404(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/?indicator=bogus")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDashboard_MissingFileIs404AndRecovers(t *testing.T) {
	app := newTestApp(t)

	// coastal-eutrophication.csv was never written.
	rec := get(t, app, "/?indicator=coastal-eutrophication")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	// Selecting a different indicator recovers without a restart.
	rec = get(t, app, "/?indicator=marine-protected-areas")
	if rec.Code != http.StatusOK {
		t.Errorf("recovery status = %d, want 200", rec.Code)
	}
}

func TestExportCSV(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/export?indicator=marine-protected-areas&entity=Brazil&year_min=2000&year_max=2010")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "ods14_marine-protected-areas_") {
		t.Errorf("content disposition = %s", cd)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Country/Region,Year,"+marineMetric) {
		t.Errorf("missing header: %s", body)
	}
	if !strings.Contains(body, "Brazil,2000,10") || strings.Contains(body, "Chile") {
		t.Errorf("export filter not applied: %s", body)
	}
}

func TestCorrelationPage(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/correlation?a=marine-protected-areas&b=ocean-health-index")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Correlation Coefficient") {
		t.Errorf("correlation page missing coefficient: %s", rec.Body.String())
	}
}

func TestCorrelationPage_SameIndicatorWarns(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/correlation?a=ocean-health-index&b=ocean-health-index")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "different indicators") {
		t.Error("expected a same-indicator warning")
	}
}

func TestTrendChart_ServesPNG(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/charts/trend?indicator=marine-protected-areas&entity=Brazil&year_min=2000&year_max=2010")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %s", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty chart body")
	}
}

func TestAboutPage(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/about")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Life Below") {
		t.Error("about page content missing")
	}
	if !strings.Contains(rec.Body.String(), "<h2") {
		t.Error("about markdown was not rendered to HTML")
	}
}
