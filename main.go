package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"intake-engine/internal/backend"
	"intake-engine/internal/config"
	"intake-engine/internal/handler"
	"intake-engine/internal/orchestrator"
	"intake-engine/internal/session"
)

const version = "0.1.0"

func serve(configPath string) error {
	// .env is optional; explicit env always wins.
	for _, envFile := range []string{".env", "../.env"} {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				log.Printf("load %s: %v", envFile, err)
			}
			break
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	crm := backend.NewHTTPClient(cfg.Backend.BaseURL, cfg.BackendTimeout())
	store := session.NewStore()
	orch := orchestrator.New(crm, cfg.SubmitCooldown())
	h := handler.New(store, crm, orch)

	log.Printf("intake engine starting on port %s (backend %s)", cfg.Port, cfg.Backend.BaseURL)
	return fasthttp.ListenAndServe(":"+cfg.Port, h.Handle)
}

func main() {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the intake engine server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of the intake engine",
		Run: func(cmd *cobra.Command, args []string) {
			log.Printf("intake-engine v%s", version)
		},
	}

	rootCmd := &cobra.Command{Use: "intake-engine"}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
