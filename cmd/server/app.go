package main

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/clanbattle"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/redis"
	battlerecord "github.com/KirkDiggler/rpg-progression/internal/repositories/battle_record"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	companionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/companion"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/lease"
	rosterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/roster"
)

type app struct {
	progression progression.Service
	clanBattle  clanbattle.Service
	close       func()
}

func loadCatalog(c *Config) (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(c.CatalogPath)
}

func newEngine(c *Config) (engine.Engine, error) {
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	return engine.New(&engine.Config{
		Catalog:         cat,
		IDGenerator:     idgen.NewUUID("qa"),
		MaxQueueSeconds: c.MaxQueueSeconds,
	})
}

// openApp builds the services a command runs against
var openApp = newApp

// newApp wires the Redis-backed services
func newApp(ctx context.Context, c *Config) (*app, error) {
	eng, err := newEngine(c)
	if err != nil {
		return nil, err
	}

	client, err := redis.NewClient(c.RedisAddr, nil)
	if err != nil {
		return nil, err
	}
	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	closeClient := func() { _ = client.Close() }

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, err
	}
	companionRepo, err := companionrepo.NewRedis(&companionrepo.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, err
	}
	rosterRepo, err := rosterrepo.NewRedis(&rosterrepo.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, err
	}

	leaseRepo, err := lease.NewRedisRepository(&lease.Config{Client: client, IDGenerator: idgen.NewUUID("lease")})
	if err != nil {
		closeClient()
		return nil, err
	}

	clk := clock.New()
	recordRepo, err := battlerecord.NewRedisRepository(&battlerecord.Config{Client: client, Clock: clk})
	if err != nil {
		closeClient()
		return nil, err
	}

	progressionSvc, err := progression.NewOrchestrator(&progression.Config{
		Engine:        eng,
		CharacterRepo: characterRepo,
		CompanionRepo: companionRepo,
		LeaseRepo:     leaseRepo,
		Clock:         clk,
	})
	if err != nil {
		closeClient()
		return nil, err
	}

	clanBattleSvc, err := clanbattle.NewOrchestrator(&clanbattle.Config{
		Engine:        eng,
		CharacterRepo: characterRepo,
		RosterRepo:    rosterRepo,
		RecordRepo:    recordRepo,
		IDGenerator:   idgen.NewUUID("battle"),
	})
	if err != nil {
		closeClient()
		return nil, err
	}

	return &app{
		progression: progressionSvc,
		clanBattle:  clanBattleSvc,
		close:       closeClient,
	}, nil
}
