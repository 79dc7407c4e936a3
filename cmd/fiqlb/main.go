package main

import (
	"fmt"
	"log"
	"os"

	dotenv "github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	err := dotenv.Load()
	if err != nil {
		log.Println("WARN: Failed to load .env")
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fiqlb",
		Short: "Daily leaderboard service for the Football IQ puzzle games",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in defaults + env)")

	root.AddCommand(serveCmd())
	root.AddCommand(syncCmd())
	root.AddCommand(boardCmd())

	return root
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the poller and HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (overrides config)")
	return cmd
}

func syncCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch one day's attempts from the backend and store them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(day)
		},
	}

	cmd.Flags().StringVar(&day, "date", "", "day to sync, YYYY-MM-DD (default: today)")
	return cmd
}

func boardCmd() *cobra.Command {
	var (
		day        string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print a day's ranked leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(day, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&day, "date", "", "day to show, YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
