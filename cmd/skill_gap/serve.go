package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap/internal/server"
	"github.com/jonathan/skill-gap/internal/server/ratelimit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	Long:  "Serve /analyze, /analyze/stream, /skills and /rank as a JSON API backed by the configured analyzer.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := newSession(ctx, settings)
	if err != nil {
		return err
	}
	defer sess.Close()

	srv, err := server.New(server.Config{
		Addr:      fmt.Sprintf(":%d", servePort),
		Analyzer:  sess.analyzer,
		Cache:     sess.cache,
		LLM:       sess.feedbackClient(),
		RateLimit: ratelimit.LoadConfig(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

