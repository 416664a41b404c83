// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Blog serves Jack Fan's personal blog: a self introduction, recent posts and
pages for every post tag.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/jackfan/blog/config"
	"codeberg.org/jackfan/blog/core/audit"
	"codeberg.org/jackfan/blog/core/content"
	"codeberg.org/jackfan/blog/server/pagecache"
	"codeberg.org/jackfan/blog/server/router"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := loadContent(ctx); err != nil {
		return err
	}

	if err := setupPageCache(); err != nil {
		return err
	}

	server := &http.Server{
		Handler:           router.New(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	listener, err := chooseListener(ctx)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msg("Server exited gracefully")

	return nil
}

// loadContent reads every post and installs the resulting store.
func loadContent(ctx context.Context) error {
	start := time.Now()

	posts, err := content.Load(ctx, config.Global.Content.Directory)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	store := content.NewStore(posts, config.Global.Content.IncludeDrafts)
	content.SetCurrent(store)

	log.Info().
		Str("directory", config.Global.Content.Directory).
		Int("posts", store.Len()).
		Int("tags", len(store.Tags())).
		Dur("dur", time.Since(start)).
		Msg("Loaded posts")

	return nil
}

// setupPageCache installs the rendered page cache if it is enabled.
func setupPageCache() error {
	if !config.Global.Cache.Enabled {
		pagecache.SetActive(nil)

		return nil
	}

	c, err := pagecache.New(config.Global.Cache.Size)
	if err != nil {
		return fmt.Errorf("failed to create page cache: %w", err)
	}

	pagecache.SetActive(c)

	log.Info().Int("size", config.Global.Cache.Size).Msg("Page cache enabled")

	return nil
}

func chooseListener(ctx context.Context) (net.Listener, error) {
	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	// Extract the port for logging
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	// Log the address and convenient URL for local development
	log.Info().
		Str("address", addr).
		Str("port", port).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}
