package main

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Lebaba/internal/account"
	"Lebaba/internal/cart"
	"Lebaba/internal/catalog"
	"Lebaba/internal/config"
	"Lebaba/internal/storefront"
	"Lebaba/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := kit.NewLogger(service, cfg.Debug)
	defer func() { _ = log.Sync() }()

	catalogStore, accountStore, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}

	deps := storefront.Deps{
		Catalog: &catalog.Server{Store: catalogStore, Log: log},
		Account: &account.Server{Store: accountStore, Log: log},
		Cart: &cart.Server{
			Sessions: cart.NewSessions(),
			Catalog:  catalogStore,
			Log:      log,
		},
	}

	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		AllowedOrigin:  cfg.AllowedOrigin,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStores(cfg config.Config, log *zap.Logger) (catalog.Store, account.Store, error) {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using postgres stores")
		return catalog.NewPostgresStore(db), account.NewPostgresStore(db), nil
	}

	store := catalog.NewMemStore()
	if err := catalog.SeedDefaults(context.Background(), store); err != nil {
		return nil, nil, err
	}
	log.Info("using in-memory stores", zap.String("note", "data resets on restart"))
	return store, account.NewMemStore(), nil
}
