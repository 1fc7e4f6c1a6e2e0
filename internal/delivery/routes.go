package delivery

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *DubHandler, outputDir string) {
	r.With(
		httputil.RecoverMiddleware,
		httprate.LimitByIP(10, 1*time.Minute),
	).Post("/dub", h.Dub)

	// --- готовые артефакты ---
	r.With(httputil.RecoverMiddleware).
		Get("/files/{name}", serveArtifact(outputDir))
}

func serveArtifact(outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		// не даём выйти из каталога артефактов; chi отдаёт сегмент
		// в исходной (возможно закодированной) форме
		if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\%`) {
			http.Error(w, "invalid file name", http.StatusBadRequest)
			return
		}

		http.ServeFile(w, r, filepath.Join(outputDir, name))
	}
}
