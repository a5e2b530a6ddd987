// Package main boots the Retail Catalog Service HTTP server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fairyhunter13/retail-catalog-service/internal/catalog"
	"github.com/fairyhunter13/retail-catalog-service/internal/config"
	httpapi "github.com/fairyhunter13/retail-catalog-service/internal/http"
	"github.com/fairyhunter13/retail-catalog-service/internal/loader"
	"github.com/fairyhunter13/retail-catalog-service/internal/obs"
	"github.com/fairyhunter13/retail-catalog-service/internal/store"
)

// stdinConfirm asks the operator to confirm a price markdown on the
// terminal. Anything but "y" declines.
type stdinConfirm struct {
	r *bufio.Reader
}

func (c *stdinConfirm) ConfirmMarkdown(name string, oldPrice, newPrice float64) bool {
	fmt.Printf("Понизить цену %s с %v до %v? [y/N] ", name, oldPrice, newPrice)
	line, err := c.r.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "y"
}

func markdownPolicy(name string) catalog.ConfirmPolicy {
	switch name {
	case config.PolicyApprove:
		return catalog.ApproveAll
	case config.PolicyPrompt:
		return &stdinConfirm{r: bufio.NewReader(os.Stdin)}
	default:
		return catalog.DenyAll
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		obs.Logger.Error("config_error", "error", err)
		os.Exit(1)
	}
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting")

	reg := catalog.NewRegistry()
	st := store.New()
	cats, err := loader.Load(cfg.CatalogPath, reg)
	if err != nil {
		obs.Logger.Warn("catalog_load_failed", "path", cfg.CatalogPath, "error", err)
	} else {
		st.ReplaceCatalog(cats)
		obs.Logger.Info("catalog_loaded", "path", cfg.CatalogPath, "categories", len(cats))
	}

	app := httpapi.NewApp(cfg, st, reg, markdownPolicy(cfg.MarkdownPolicy))
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
