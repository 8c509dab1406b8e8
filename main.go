package main

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spotfurnish/quotegen/config"
	"github.com/spotfurnish/quotegen/layout"
	"github.com/spotfurnish/quotegen/mailer"
	"github.com/spotfurnish/quotegen/pricing"
	canvasrenderer "github.com/spotfurnish/quotegen/renderer/canvas"
	"github.com/spotfurnish/quotegen/server"
	"github.com/spotfurnish/quotegen/service"
	"github.com/spotfurnish/quotegen/store"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.App)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.Open(cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	orders := store.NewOrderStore(db)

	rend, err := canvasrenderer.NewRenderer(canvasrenderer.Options{
		Fonts: map[string]canvasrenderer.Resource{
			"Helvetica":      {Path: filepath.Join(cfg.Assets.FontDir, "Helvetica.ttf")},
			"Helvetica-Bold": {Path: filepath.Join(cfg.Assets.FontDir, "Helvetica-Bold.ttf")},
		},
		Fallback: "Helvetica",
	})
	if err != nil {
		logger.Fatal("init renderer", zap.Error(err))
	}

	invoices, err := pricing.NewSnowflakeInvoices(cfg.Node)
	if err != nil {
		logger.Fatal("init invoice source", zap.Error(err))
	}

	checkout := service.NewCheckout(service.Options{
		Engine:   pricing.NewEngine(nil, invoices, nil),
		Fees:     cfg.Fees,
		Company:  cfg.Company,
		Measurer: layout.NewMeasurer(rend.Width),
		Renderer: rend,
		Orders:   orders,
		Mailer: mailer.NewSMTPMailer(mailer.Config{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromName:  cfg.SMTP.FromName,
			FromEmail: cfg.SMTP.FromEmail,
		}),
		Images:   service.NewHTTPImageFetcher(),
		LogoURL:  cfg.Assets.LogoURL,
		DebugDir: cfg.Assets.DebugLayoutDir,
		Log:      logger,
	})

	router := server.Router(server.NewHandler(checkout, logger))
	logger.Info("listening", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(app config.AppConfig) (*zap.Logger, error) {
	if app.Env == "production" && !app.Debug {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
