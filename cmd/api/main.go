package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/promptdeck/promptdeck-backend/internal/config"
	"github.com/promptdeck/promptdeck-backend/internal/handler"
	"github.com/promptdeck/promptdeck-backend/internal/middleware"
	"github.com/promptdeck/promptdeck-backend/internal/migration"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
	"github.com/promptdeck/promptdeck-backend/internal/routes"
	"github.com/promptdeck/promptdeck-backend/internal/service"
	pkgcache "github.com/promptdeck/promptdeck-backend/pkg/cache"
	"github.com/promptdeck/promptdeck-backend/pkg/jwt"
	pkglogger "github.com/promptdeck/promptdeck-backend/pkg/logger"
	pkgredis "github.com/promptdeck/promptdeck-backend/pkg/redis"
)

// @title           PromptDeck Backend API
// @version         1.0
// @description     Curated knowledge base for prompts, guides, agents and rulesets
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.LogResolved()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db, cfg.Seed); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
	}

	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn.Std(), cfg.JWT.RefreshIn.Std())

	userRepo := repository.NewUserRepository(db)
	promptRepo := repository.NewPromptRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	rulesetRepo := repository.NewRulesetRepository(db)
	proposalRepo := repository.NewProposalRepository(db)

	h := routes.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo, jwtManager)),
		User:     handler.NewUserHandler(service.NewUserService(userRepo)),
		Prompt:   handler.NewPromptHandler(service.NewPromptService(promptRepo), cacheService),
		Guide:    handler.NewGuideHandler(service.NewGuideService(guideRepo), cacheService),
		Agent:    handler.NewAgentHandler(service.NewAgentService(agentRepo), cacheService),
		Ruleset:  handler.NewRulesetHandler(service.NewRulesetService(rulesetRepo), cacheService),
		Proposal: handler.NewProposalHandler(service.NewProposalService(proposalRepo)),
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "X-Cache"},
		MaxAge:           86400,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	routes.Setup(router, h, jwtManager, userRepo, cacheService)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	return gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
