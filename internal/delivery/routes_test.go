package delivery

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestServeArtifact(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "translated_es.mp3"), []byte("mp3data"), 0644); err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, newTestHandler(&fakeRunner{}), dir)

	req := httptest.NewRequest(http.MethodGet, "/files/translated_es.mp3", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "mp3data" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServeArtifactRejectsTraversal(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, newTestHandler(&fakeRunner{}), t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/files/..%2Fsecret", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
