package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/herbpot/shoppingmol/internal/config"
	"github.com/herbpot/shoppingmol/internal/db"
	"github.com/herbpot/shoppingmol/internal/logger"
	"github.com/herbpot/shoppingmol/internal/repository"
	"github.com/herbpot/shoppingmol/internal/server"
)

func main() {
	// грузим .env из нескольких мест: текущая папка, родительская, корень репо
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg, err := config.Read(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	zlog := logger.SetupLogger(cfg.DebugFlag)
	zlog.Info().Str("addr", cfg.Addr).Msg("start server")

	if cfg.SessionSecret == "" {
		zlog.Fatal().Msg("SESSION_SECRET is empty (check your .env)")
	}

	gdb, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		zlog.Fatal().Err(err).Msg("connect database")
	}
	repo := repository.New(gdb)
	if err := repo.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("migrate schema")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		zlog.Fatal().Err(err).Msg("unwrap sql db")
	}
	defer sqlDB.Close()

	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   server.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	srv := server.New(repo, zlog)
	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Router(store, cfg.TemplatesGlob, cfg.StaticDir),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		zlog.Fatal().Err(err).Msg("server failed")
	}
	zlog.Info().Msg("server stopped")
}
