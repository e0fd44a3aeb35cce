package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/sportunion/clubmart/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	mailer := NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
		cfg.MailFrom, cfg.MailFromName, cfg.MailTimeout, sugaredLogger)

	service := NewService(repository, cfg.AdminPassword, cfg.JWTSecret)
	billing := NewBillingService(repository, mailer, cfg.OrgName, cfg.OrgIBAN, cfg.MinInvoiceTotal, sugaredLogger)
	handlers := NewHandlers(service, billing, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	api.Get("/catalog", handlers.GetCatalog)
	api.Post("/orders", handlers.SubmitOrder)
	api.Post("/statement", handlers.GetStatement)

	admin := api.Group("/admin")
	admin.Post("/login", handlers.AdminLogin)

	admin.Use(handlers.AdminOnly)
	admin.Get("/catalog", handlers.GetAdminCatalog)
	admin.Post("/articles", handlers.SaveArticles)
	admin.Post("/groups", handlers.AddArticleGroup)
	admin.Put("/groups/:id", handlers.RenameArticleGroup)
	admin.Get("/statement", handlers.GetYearStatement)
	admin.Post("/billing", handlers.RunBilling)

	go sugaredLogger.Fatal(app.Listen(cfg.RunAddress))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
