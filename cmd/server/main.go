package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpadapter "driftisle/internal/adapter/http"
	metricsinmem "driftisle/internal/adapter/metrics/inmemory"
	gormrepo "driftisle/internal/adapter/repo/gorm"
	sqliterepo "driftisle/internal/adapter/repo/sqlite"
	"driftisle/internal/adapter/stream"
	"driftisle/internal/app/ports"
	"driftisle/internal/app/session"
	"driftisle/internal/app/sim"
	"driftisle/internal/domain/clock"
	"driftisle/internal/domain/world"
	"driftisle/internal/tuning"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

const defaultSavePath = "./save/driftisle.db"

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := tuning.Load(strEnv("DRIFTISLE_TUNING", ""))
	if err != nil {
		log.Fatal("load tuning", zap.Error(err))
	}

	records, events, tx, err := buildRepos(log)
	if err != nil {
		log.Fatal("open storage", zap.Error(err))
	}

	simCfg := simConfig(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simulation := session.LoadSimulation(ctx, records, simCfg, log)
	kpi := metricsinmem.NewRecorder()
	hub := stream.NewHub(log)

	runner := session.NewRunner(session.Config{
		TickRateHz:    cfg.Sim.TickRateHz,
		AutosaveEvery: time.Duration(cfg.Sim.AutosaveSeconds) * time.Second,
	}, simCfg, simulation, records, events, tx, kpi, hub, log)

	go func() {
		if err := runner.Run(ctx); err != nil {
			log.Error("runner stopped", zap.Error(err))
		}
	}()
	go func() {
		if err := hub.Serve(ctx, cfg.Server.StreamAddr); err != nil {
			log.Error("stream listener stopped", zap.Error(err))
		}
	}()

	h := httpadapter.Handler{Runner: runner, KPI: kpi}
	s := server.Default(server.WithHostPorts(cfg.Server.APIAddr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Info("driftisle server listening",
		zap.String("api", cfg.Server.APIAddr),
		zap.String("stream", cfg.Server.StreamAddr))
	s.Spin()
	stop()
}

// buildRepos picks the persistence backend: postgres when a DSN is set,
// otherwise a local sqlite save file.
func buildRepos(log *zap.Logger) (ports.RecordRepository, ports.EventRepository, ports.TxManager, error) {
	if dsn := strEnv("DRIFTISLE_DB_DSN", ""); dsn != "" {
		db, err := gormrepo.OpenPostgres(dsn)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("using postgres save backend")
		return gormrepo.NewRecordRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db), nil
	}

	path := strEnv("DRIFTISLE_SAVE_PATH", defaultSavePath)
	db, err := sqliterepo.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("using sqlite save backend", zap.String("path", path))
	return sqliterepo.NewRecordRepo(db), sqliterepo.NewEventRepo(db), sqliterepo.NewTxManager(db), nil
}

func simConfig(cfg tuning.Tuning) sim.Config {
	return sim.Config{
		Clock: clock.Config{
			MsPerGameMinute: cfg.Sim.MsPerGameMinute,
			MinutesPerDay:   cfg.Sim.MinutesPerDay,
			BoundaryMinutes: cfg.Sim.BoundaryMinutes,
			RestTimeScale:   cfg.Sim.RestTimeScale,
		},
		Gen: world.GenConfig{
			Width:       cfg.World.Width,
			Height:      cfg.World.Height,
			TreeDensity: cfg.World.TreeDensity,
		},
		Tide:          cfg.Tide,
		RegrowMinutes: cfg.Sim.RegrowMinutes,
		MaxDarkness:   cfg.Sim.MaxDarkness,
		Recipes:       cfg.Recipes,
		Seed:          cfg.Sim.Seed,
	}
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
