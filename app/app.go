package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"figure-studio/app/controller"
	"figure-studio/app/router"
	"figure-studio/config"
	"figure-studio/db"
	"figure-studio/figuredata"
	"figure-studio/repository"
	"figure-studio/service"
)

// App is the wired application
type App struct {
	Handler http.Handler
	closers []func()
}

// Close releases the resources opened by Initialize
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	// Reference table
	table, err := figuredata.Load(cfg.FiguredataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load figuredata: %w", err)
	}

	// Database is optional: without it snapshots and saved looks are disabled
	var catalogRepo repository.CatalogRepositoryInterface
	var lookRepo repository.LookRepositoryInterface
	if dsn, err := cfg.DatabaseDSN(); err == nil {
		if err := db.InitDB(ctx, dsn); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.closers = append(app.closers, func() { db.CloseDB() })
		catalogRepo = repository.NewCatalogRepository()
		lookRepo = repository.NewLookRepository()
	} else {
		log.Printf("⚠️  %v; running without persistence", err)
	}

	// Drive is only needed for drive:// listing locations
	var driveService service.DriveServiceInterface
	if cfg.UsesDrive() {
		if cfg.CredentialsPath == "" {
			return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
		ds, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		driveService = ds
	}

	sources, err := buildSources(cfg, table, driveService)
	if err != nil {
		return nil, err
	}

	// Catalog
	var reconcileOpts []service.ReconcileOption
	if cfg.UnionColors {
		reconcileOpts = append(reconcileOpts, service.WithColorUnion())
	}
	store := service.NewCatalogStore()
	loader := service.NewCatalogLoader(sources, table, catalogRepo, store, cfg.SourceTimeout, reconcileOpts...)
	if _, err := loader.Reload(ctx); err != nil {
		log.Printf("⚠️  Initial catalog load: %v", err)
	}
	catalogService := service.NewCatalogService(store, loader)

	// Thumbnails
	httpLoader := service.NewHTTPImageLoader(cfg.ProbeTimeout)
	var imageLoader service.ImageLoader = httpLoader
	if cfg.ProbeBackend == "chrome" {
		chromeLoader, err := service.NewChromeImageLoader(cfg.ChromePath, cfg.ProbeTimeout)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, chromeLoader.Close)
		imageLoader = chromeLoader
	}
	engine := service.NewThumbnailEngine(service.NewProbeCache(), service.DefaultThumbnailHosts(cfg.Region), imageLoader)

	diskCache, err := service.NewThumbnailDiskCache(cfg.ThumbnailCacheDir)
	if err != nil {
		log.Printf("⚠️  Thumbnail disk cache disabled: %v", err)
	}
	thumbnailService := service.NewThumbnailService(engine, httpLoader, diskCache, cfg.WarmupWorkers)

	// Figures
	seed, err := service.NewSeed()
	if err != nil {
		return nil, err
	}
	figureService := service.NewFigureService(store, service.NewRandomFigureGenerator(seed), cfg.Region)

	// Create controllers
	controllers := &router.Controllers{
		Catalog:   controller.NewCatalogController(catalogService),
		Figure:    controller.NewFigureController(figureService),
		Thumbnail: controller.NewThumbnailController(catalogService, thumbnailService),
	}
	if lookRepo != nil {
		controllers.Look = controller.NewLookController(lookRepo)
	}

	// Setup routes using standard http router
	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)
	app.Handler = mux

	return app, nil
}

// buildSources pairs each configured location with its normalizer.
// Without an official endpoint the reference table is served as the official listing.
func buildSources(cfg *config.Config, table *figuredata.Table, driveService service.DriveServiceInterface) ([]service.ListingSource, error) {
	client := &http.Client{}
	locations := []struct {
		location   string
		normalizer service.ListingNormalizer
	}{
		{cfg.OfficialSourceURL, service.OfficialNormalizer{}},
		{cfg.MirrorASourceURL, service.MirrorANormalizer{}},
		{cfg.MirrorBSourceURL, service.MirrorBNormalizer{}},
	}

	var sources []service.ListingSource
	for _, l := range locations {
		fetcher, err := service.NewListingFetcher(l.location, driveService, client)
		if err != nil {
			return nil, fmt.Errorf("invalid %s source: %w", l.normalizer.Provenance(), err)
		}
		if fetcher == nil {
			continue
		}
		sources = append(sources, service.ListingSource{Fetcher: fetcher, Normalizer: l.normalizer})
	}

	if cfg.OfficialSourceURL == "" {
		sources = append(sources, service.ListingSource{
			Fetcher:    &service.ReferenceTableFetcher{Table: table},
			Normalizer: service.OfficialNormalizer{},
		})
	}
	return sources, nil
}
