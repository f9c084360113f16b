package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/logging"
	"github.com/dasdy/spookydraw/model"
	"github.com/dasdy/spookydraw/web/routes"
	"github.com/google/uuid"
)

type Options struct {
	Storage   db.Storage
	Tracker   db.Tracker
	Settings  *model.AppSettings
	AssetsDir string
	Dev       bool
	Verbose   bool
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// withRequestID tags the request context with a fresh id, so that every log
// line written while handling the request carries it.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := logging.AppendCtx(r.Context(), slog.String(logging.RequestID, id))

		w.Header().Set("X-Request-Id", id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		slog.DebugContext(ctx, "Handled request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func BuildServer(opts *Options) http.Handler {
	mux := http.NewServeMux()

	assetsDir := opts.AssetsDir
	if assetsDir == "" {
		assetsDir = "assets"
	}

	mux.Handle("GET /assets/",
		disableCacheInDevMode(opts.Dev,
			http.StripPrefix("/assets",
				http.FileServer(http.Dir(assetsDir)))))

	handler := routes.ServerHandler{
		Storage:  opts.Storage,
		Tracker:  opts.Tracker,
		Settings: opts.Settings,
		Tools:    routes.NewToolState(opts.Settings.DefaultTool),
		Verbose:  opts.Verbose,
	}

	mux.HandleFunc("POST "+routes.ActivateURL, handler.ActivateHandle)
	mux.HandleFunc("GET /gallery", handler.GalleryHandle)
	mux.HandleFunc("GET /drawings/{id}", handler.DrawingHandle)
	mux.HandleFunc("GET /stats", handler.StatsHandle)
	mux.HandleFunc("GET /{$}", handler.EditorHandle)

	return withRequestID(mux)
}

func StartServer(port int, opts *Options) error {
	slog.Info("Running interface", "port", port)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(opts))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
