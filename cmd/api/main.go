package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/daonlab/crm-calendar-backend/internal/config"
	"github.com/daonlab/crm-calendar-backend/internal/domain"
	"github.com/daonlab/crm-calendar-backend/internal/handler"
	"github.com/daonlab/crm-calendar-backend/internal/middleware"
	"github.com/daonlab/crm-calendar-backend/internal/repository"
	"github.com/daonlab/crm-calendar-backend/internal/routes"
	"github.com/daonlab/crm-calendar-backend/internal/service"
	pkgcache "github.com/daonlab/crm-calendar-backend/pkg/cache"
	"github.com/daonlab/crm-calendar-backend/pkg/jwt"
	pkglogger "github.com/daonlab/crm-calendar-backend/pkg/logger"
	pkgredis "github.com/daonlab/crm-calendar-backend/pkg/redis"
)

func main() {
	dotenvFiles := config.LoadDotEnv()

	configPath := config.Path()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pkglogger.Init(cfg.Env)
	pkglogger.Get().Info().
		Str("env", cfg.Env).
		Str("config", configPath).
		Strs("dotenv", dotenvFiles).
		Msg("starting")

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Get().Info().Msg("connected to MySQL")

	// Redis (optional)
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			pkglogger.Get().Warn().Err(err).Msg("redis unavailable, continuing without cache")
		} else {
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.Get().Info().Msg("connected to Redis")
		}
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	campaignRepo := repository.NewCampaignRepository(db)
	userRepo := repository.NewUserRepository(db)

	campaignService := service.NewCampaignService(campaignRepo, cacheService, cfg.Campaign.CopyTitleSuffix)
	authService := service.NewAuthService(userRepo, jwtManager)

	campaignHandler := handler.NewCampaignHandler(campaignService)
	authHandler := handler.NewAuthHandler(authService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(cfg.CORS.AllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "crm-calendar-backend",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router, campaignHandler, authHandler, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Get().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if !cfg.IsDevelopment() {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Campaign{}); err != nil {
		return nil, err
	}
	return db, nil
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
