package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"back2me/internal/config"
	"back2me/internal/hub"
	"back2me/internal/logger"
	"back2me/internal/server"
	"back2me/internal/session"
	"back2me/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.GinMode)

	st := store.New()
	if cfg.SeedSampleData {
		st.SeedSampleData(time.Now().Unix())
		zlog.Info("sample data seeded")
	}

	router := server.NewRouter(server.Deps{
		Store:    st,
		Sessions: session.NewRegistry(),
		Hub:      hub.New(),
		Logger:   zlog,
	})

	zlog.Info("listening", zap.String("addr", fmt.Sprintf(":%d", cfg.Port)))
	if err := server.Run(cfg, router); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
