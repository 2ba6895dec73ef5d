package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/qerope/resume-ats/internal/ai"
	"github.com/qerope/resume-ats/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, config, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	analyzer, err := newAnalyzer(ctx, config.AI, logger)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Warn("job analysis is disabled", zap.Error(err))
	case err != nil:
		logger.Fatal("creating job analyzer", zap.Error(err))
	}

	srv := server.New(*config.Server, server.Deps{
		Logger:   logger,
		Analyzer: analyzer,
		Keywords: config.Keywords,
	})

	logger.Info("starting the resume-ats api", zap.String("addr", srv.Addr()), zap.String("version", version))

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}

	logger.Info("server stopped")
}
