package main

import (
	"log"

	"smarthaus/config"
	_ "smarthaus/docs"
	"smarthaus/internal/adapter/http/routes"
	"smarthaus/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Smarthaus Platform API
// @version         1.0
// @description     Smart-home sales platform: payment milestone planning, settlement and fulfilment.

// @host localhost:8080

// @BasePath  /v1

var rootCmd = &cobra.Command{
	Use:   "smarthaus",
	Short: "Smart-home platform API server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		routes.Run()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		db := database.Connect()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		log.Printf("migrations complete")
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}
