package main

import (
	"fmt"
	"os"

	"github.com/hr-tools/social-atlas/pkg/server"
	"github.com/hr-tools/social-atlas/pkg/services/answers"
	"github.com/hr-tools/social-atlas/pkg/services/catalogue"
	"github.com/hr-tools/social-atlas/pkg/services/config"
	"github.com/hr-tools/social-atlas/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Social Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "social-atlas.yaml",
		"Path to the Social Atlas config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalogueFile, err := os.Open(cfg.CataloguePath)
	if err != nil {
		return fmt.Errorf("failed to open question catalogue: %w", err)
	}
	questions, err := catalogue.Load(catalogueFile)
	_ = catalogueFile.Close()
	if err != nil {
		return fmt.Errorf("failed to load question catalogue: %w", err)
	}

	logger.Info().Msgf("Question catalogue `%s` loaded, %d top-level questions.",
		cfg.CataloguePath, len(questions))

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: cfg.ServerAddr,
		Dependencies: server.Dependencies{
			Report:         report.NewController(answers.NewCalculator()),
			Questions:      questions,
			MaxUploadBytes: cfg.MaxUploadBytes,
			Logger:         logger,
		},
	})

	return webAPI.Start()
}
