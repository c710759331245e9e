package session

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"driftisle/internal/app/ports"
	"driftisle/internal/app/sim"
	"driftisle/internal/domain/clock"
	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

// LoadSimulation restores the simulation from the three persisted records.
// A missing or unparsable record falls back to a freshly generated default
// for that record alone; load failures are never fatal.
func LoadSimulation(ctx context.Context, records ports.RecordRepository, cfg sim.Config, log *zap.Logger) *sim.Simulation {
	grid, gridErr := loadWorld(ctx, records)
	player, playerErr := loadPlayer(ctx, records)
	state, stateErr := loadState(ctx, records)

	if gridErr != nil && playerErr != nil && stateErr != nil {
		if !errors.Is(gridErr, ports.ErrNotFound) {
			log.Warn("all records unusable, generating fresh world", zap.Error(gridErr))
		} else {
			log.Info("no saved records, generating fresh world")
		}
		return sim.New(cfg)
	}

	if gridErr != nil {
		log.Warn("world record unusable, regenerating island", zap.Error(gridErr))
		grid = world.Generate(cfg.Gen, rand.New(rand.NewSource(cfg.Seed)))
	}
	if playerErr != nil {
		log.Warn("player record unusable, respawning player", zap.Error(playerErr))
		player = survival.NewPlayer(grid.SpawnPoint())
	}
	if stateErr != nil {
		log.Warn("game state record unusable, starting day one", zap.Error(stateErr))
		state = survival.NewGameState(clock.NewTime(1, 8*60, 0, clock.NewKeeper(cfg.Clock).Config().MinutesPerDay))
	}

	return sim.Restore(cfg, grid, player, state)
}

func loadWorld(ctx context.Context, records ports.RecordRepository) (*world.Grid, error) {
	payload, err := records.Load(ctx, ports.RecordWorld)
	if err != nil {
		return nil, err
	}
	return DecodeWorld(payload)
}

func loadPlayer(ctx context.Context, records ports.RecordRepository) (*survival.Player, error) {
	payload, err := records.Load(ctx, ports.RecordPlayer)
	if err != nil {
		return nil, err
	}
	return DecodePlayer(payload)
}

func loadState(ctx context.Context, records ports.RecordRepository) (*survival.GameState, error) {
	payload, err := records.Load(ctx, ports.RecordState)
	if err != nil {
		return nil, err
	}
	return DecodeState(payload)
}
