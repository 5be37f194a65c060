// Comando server: arranca el API o aplica migraciones.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/cache"
	memcache "github.com/MezaMaximiliano/OT168-Java-server/internal/cache/memory"
	rediscache "github.com/MezaMaximiliano/OT168-Java-server/internal/cache/redis"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/config"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/email"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/http/router"
	jwtx "github.com/MezaMaximiliano/OT168-Java-server/internal/jwt"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
	memstore "github.com/MezaMaximiliano/OT168-Java-server/internal/store/memory"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/store/pg"
	migrations "github.com/MezaMaximiliano/OT168-Java-server/migrations/postgres"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env opcional, pisa nada que ya esté en el entorno.
	_ = godotenv.Load()

	var configPath string

	root := &cobra.Command{
		Use:          "server",
		Short:        "API REST de la organización",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path al YAML de configuración")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Arranca el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones de postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(configPath)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	cacheClient := openCache(cfg)
	defer func() { _ = cacheClient.Close() }()

	var mail email.Sender
	if cfg.SMTP.Host != "" {
		mail = email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From,
			cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.TLS)
	}

	issuer := jwtx.NewIssuer(cfg.JWT.Issuer, cfg.JWT.Secret, cfg.AccessTTL())

	handler := router.New(router.Deps{
		Config: cfg,
		Store:  store,
		Issuer: issuer,
		Cache:  cacheClient,
		Mail:   mail,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening",
			logger.Component("http"),
			logger.Path(cfg.Server.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down", logger.Component("http"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func migrate(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != "postgres" {
		return fmt.Errorf("migrate: requiere storage.driver postgres, hay %q", cfg.Storage.Driver)
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log := logger.L()

	ctx := context.Background()
	store, err := pg.New(ctx, cfg.Storage.DSN, pg.Config{
		MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	if err := migrations.Apply(ctx, store.Pool()); err != nil {
		return err
	}
	log.Info("migrations applied", logger.Component("migrate"))
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return memstore.New(), nil
	case "postgres":
		store, err := pg.New(ctx, cfg.Storage.DSN, pg.Config{
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return nil, err
		}
		if cfg.Storage.Migrate {
			if err := migrations.Apply(ctx, store.Pool()); err != nil {
				store.Close()
				return nil, err
			}
		}
		return store, nil
	default:
		return nil, fmt.Errorf("storage.driver desconocido %q", cfg.Storage.Driver)
	}
}

func openCache(cfg *config.Config) cache.Client {
	if cfg.Cache.Kind == "redis" && cfg.Cache.Redis.Addr != "" {
		return rediscache.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.DB, cfg.Cache.Redis.Prefix)
	}
	return memcache.New(cfg.CacheTTL())
}
