package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/maxjeon97/biztime/internal/company"
	companyStore "github.com/maxjeon97/biztime/internal/company/store"
	"github.com/maxjeon97/biztime/internal/config"
	"github.com/maxjeon97/biztime/internal/database"
	biztimeHttp "github.com/maxjeon97/biztime/internal/http"
	companyHandler "github.com/maxjeon97/biztime/internal/http/company"
	invoiceHandler "github.com/maxjeon97/biztime/internal/http/invoice"
	"github.com/maxjeon97/biztime/internal/invoice"
	invoiceStore "github.com/maxjeon97/biztime/internal/invoice/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		companyService = company.NewService(companyStore.New(db))
		invoiceService = invoice.NewService(invoiceStore.New(db))
	)

	var (
		companyH = companyHandler.NewHandler(companyService)
		invoiceH = invoiceHandler.NewHandler(invoiceService)
	)

	router := biztimeHttp.New(db, companyH, invoiceH)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
