// @title Momentum API
// @description API for the habit-tracker app "Momentum"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/limetree/momentum/internal/api"
	"github.com/limetree/momentum/internal/cache"
	"github.com/limetree/momentum/internal/migration"
	"github.com/limetree/momentum/internal/repository"
	"github.com/limetree/momentum/internal/service"
	"github.com/limetree/momentum/pkg/cleanup"
	"github.com/limetree/momentum/pkg/config"
	jwtservice "github.com/limetree/momentum/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	statsRepo := repository.NewStatsRepo(&dbCfg)
	statsService := service.NewStatsService(habitsRepo, statsRepo)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg), statsService)
	habitService := service.NewHabitsService(habitsRepo, statsService)

	var boardCache service.BoardCacheI
	if addr := cfg.GetString("REDIS_ADDRESS"); addr != "" {
		boardCache = cache.New(
			addr,
			cfg.GetString("REDIS_PASSWORD"),
			cfg.GetInt("REDIS_DB", 0),
			time.Duration(cfg.GetInt("LEADERBOARD_CACHE_TTL_SECONDS", 30))*time.Second,
		)
	}
	leaderboardService := service.NewLeaderboardService(statsRepo, boardCache)

	migrator := migration.New(
		habitsRepo,
		repository.NewLegacyChecksRepo(&dbCfg),
		repository.NewSystemFlagsRepo(&dbCfg),
		statsService,
	)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	if err := migrator.Run(ctx); err != nil {
		log.Println("legacy migration error: " + err.Error())
	}
	cancel()

	defer cleanup.CleanUp()
	serv := api.New(&api.ServicesList{
		UserService:        userService,
		HabitsService:      habitService,
		StatsService:       statsService,
		LeaderboardService: leaderboardService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
