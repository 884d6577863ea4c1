package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"fightreel/fight"
	"fightreel/processor"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	proc := processor.New(processor.Options{
		Render: func(m fight.Matchup, title, outputPath string) error {
			return os.WriteFile(outputPath, []byte("mp4"), 0o644)
		},
	})
	return NewServer(proc)
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
}

func TestRenderExplicitMatchup(t *testing.T) {
	s := testServer(t)
	out := filepath.Join(t.TempDir(), "video.mp4")

	body := `{"left":"KAZE","right":"RYU","output_path":"` + filepath.ToSlash(out) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("render returned %d: %s", w.Code, w.Body.String())
	}

	var resp RenderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if !resp.Success {
		t.Fatalf("render reported failure: %+v", resp)
	}
	if !strings.Contains(resp.Message, "KAZE vs RYU") {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.VideoID != "" {
		t.Fatalf("no uploader configured, but got video ID %q", resp.VideoID)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestRenderEmptyBodyPicksRandomMatchup(t *testing.T) {
	s := testServer(t)

	// Random matchups land on the default output path; point it at a
	// temp dir via the request instead.
	out := filepath.Join(t.TempDir(), "video.mp4")
	body := `{"output_path":"` + filepath.ToSlash(out) + `"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("render returned %d: %s", w.Code, w.Body.String())
	}
}

func TestRenderRejectsUnknownFighter(t *testing.T) {
	s := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render",
		strings.NewReader(`{"left":"GOKU","right":"RYU"}`))
	req.Header.Set("Content-Type", "application/json")

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown fighter, got %d", w.Code)
	}
}

func TestRenderRejectsMalformedJSON(t *testing.T) {
	s := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(`{nope`))
	req.Header.Set("Content-Type", "application/json")

	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}
