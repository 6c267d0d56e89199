package router

import (
	"net/http"

	"figure-studio/app/controller"
)

type Controllers struct {
	Catalog   *controller.CatalogController
	Figure    *controller.FigureController
	Thumbnail *controller.ThumbnailController
	Look      *controller.LookController // nil when no database is configured
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every route on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Catalog routes
	mux.HandleFunc("/api/catalog", controllers.Catalog.ListCatalog)
	mux.HandleFunc("/api/catalog/status", controllers.Catalog.CatalogStatus)
	mux.HandleFunc("/admin/catalog/reload", controllers.Catalog.ReloadCatalog)

	// Figure routes
	mux.HandleFunc("/api/figure/default", controllers.Figure.DefaultFigure)
	mux.HandleFunc("/api/figure/random", controllers.Figure.RandomFigure)
	mux.HandleFunc("/api/figure/decode", controllers.Figure.DecodeFigure)
	mux.HandleFunc("/api/figure/select", controllers.Figure.SelectGarment)
	mux.HandleFunc("/api/figure/colors", controllers.Figure.SetColors)
	mux.HandleFunc("/api/figure/remove", controllers.Figure.RemoveFamily)

	// Thumbnail routes
	mux.HandleFunc("/api/thumbnails/candidates", controllers.Thumbnail.Candidates)
	mux.HandleFunc("/api/thumbnails/resolve", controllers.Thumbnail.Resolve)
	mux.HandleFunc("/api/thumbnails/image", controllers.Thumbnail.Image)
	mux.HandleFunc("/admin/thumbnails/warmup", controllers.Thumbnail.Warmup)

	if controllers.Look == nil {
		return
	}

	// Saved looks - handles both GET (list) and POST (save)
	mux.HandleFunc("/api/looks", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Look.ListLooks(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Look.SaveLook(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Look by id
	mux.HandleFunc("/api/looks/", controllers.Look.GetLook)
}
