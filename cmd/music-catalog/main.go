package main

import (
	"context"
	"log"
	"music-catalog/internal/http"
	"music-catalog/internal/memstore"
	"os"
	"syscall"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/kelseyhightower/envconfig"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"
)

var version string

type variables struct {
	Addr     string `required:"true" envconfig:"addr"`
	LogLevel string `required:"false" envconfig:"log_level"`
	AppName  string `required:"true" envconfig:"app_name"`
}

var v variables

func init() {
	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("MUSICCATALOG_ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	envconfig.MustProcess("musiccatalog", &v)
	if v.LogLevel == "" {
		v.LogLevel = "info"
	}
}

func main() {
	logger := zap.New(v.AppName, version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}
	logger.Info("configuration loaded",
		"addr", v.Addr,
		"log_level", v.LogLevel,
	)

	ctx := context.Background()

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("music-catalog root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:       logger,
		Version:      version,
		CatalogStore: memstore.New(),
		AppName:      v.AppName,
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(15 * time.Second)
}
