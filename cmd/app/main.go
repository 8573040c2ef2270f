package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/handler"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/internal/repository/postgres"
	"github.com/niklaus0x/viral-blog/internal/server"
	"github.com/niklaus0x/viral-blog/internal/service"
	"github.com/niklaus0x/viral-blog/internal/storage"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("no .env file loaded: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	dbConfig := config.DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	db, err := postgres.DB(ctx, dbConfig)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			logger.Fatal("postgres credentials are not configured; set POSTGRES_* and restart")
		}
		logger.Sugar().Fatalf("failed to connect to postgres: %s", err.Error())
	}
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Fatalf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	redisOptions := &redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	}
	rdb := redis.NewClient(redisOptions)
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Sugar().Fatalf("failed to ping redis: %s", err.Error())
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	authConfig := config.AuthConfig{
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
		AccessTTL:    viper.GetDuration("auth.access_ttl"),
	}
	if !authConfig.Enabled() {
		logger.Warn("ACCESS_SECRET is not set; running read-only, write routes are disabled")
	}

	store, err := storage.NewFSStore(viper.GetString("uploads.dir"), viper.GetString("uploads.base_url"))
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize uploads storage: %s", err.Error())
	}

	repos := repository.New(db, rdb)
	services := service.New(logger, repos, store, authConfig)
	handlers := handler.New(services, authConfig)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server gracefully: %s", err.Error())
	}

	db.Close()
	rdb.Close()
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	viper.SetDefault("auth.access_ttl", time.Hour)
	return viper.ReadInConfig()
}
