package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/sheetfile"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
)

// app is the wired sheet shared by the server and the local commands
type app struct {
	character *entities.Character
	engine    engine.Engine
	sheet     sheet.Service
	bus       events.EventBus

	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	character, err := sheetfile.New(&sheetfile.Config{
		SheetPath:  cfg.Sheet.Path,
		SkillsPath: cfg.Sheet.SkillsCSV,
	}).Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sheet")
	}

	roller := dice.New(nil)
	if cfg.Dice.Seed != 0 {
		roller = dice.NewSeeded(cfg.Dice.Seed)
	}

	eng, err := engine.New(&engine.Config{Roller: roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	a := &app{
		character: character,
		engine:    eng,
		bus:       events.NewBus(),
	}

	repo, err := a.sessionRepository(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	subscribeAudit(a.bus, slog.Default())

	svc, err := sheet.NewOrchestrator(&sheet.Config{
		Character:    character,
		Engine:       eng,
		SessionRepo:  repo,
		EventBus:     a.bus,
		HistoryLimit: cfg.Session.HistoryLimit,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create sheet orchestrator")
	}
	a.sheet = svc

	slog.Info("Sheet ready",
		"character_id", character.ID,
		"character", character.Name,
		"skills", len(character.Skills),
		"seeded", cfg.Dice.Seed != 0,
	)

	return a, nil
}

func (a *app) sessionRepository(ctx context.Context, cfg *config.Config) (session.Repository, error) {
	if cfg.Redis.Endpoint == "" {
		slog.Debug("Using in-memory sessions")
		return session.NewInMemory(&session.InMemoryConfig{TTL: cfg.Session.TTL}), nil
	}

	client, err := redis.Connect(ctx, cfg.Redis.Endpoint, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
	}
	a.closers = append(a.closers, client.Close)

	repo, err := session.NewRedis(&session.RedisConfig{
		Client: client,
		TTL:    cfg.Session.TTL,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Using redis sessions", "endpoint", cfg.Redis.Endpoint)
	return repo, nil
}

// Close releases connections and event subscriptions
func (a *app) Close() {
	if a.bus != nil {
		a.bus.ClearAll()
	}
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
}
