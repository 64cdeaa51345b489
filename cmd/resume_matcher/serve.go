package main

import (
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the matcher as JSON endpoints (/match, /analyze, /rank, ...).`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort
	if !cmd.Flags().Changed("port") {
		port = app.cfg.Port
	}

	srv := server.New(app.engine, server.Config{
		Port:            port,
		Months:          app.cfg.Months,
		RankConcurrency: app.cfg.RankConcurrency,
	})
	return srv.Start()
}
