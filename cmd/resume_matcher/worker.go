package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-matcher/internal/storage"
	"github.com/jonathan/resume-matcher/internal/worker"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

var workerCount int

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume match jobs from RabbitMQ",
	Long: "Consume MatchJob messages from a durable RabbitMQ queue, download stored resumes from S3/R2, " +
		"rank them and publish status updates to a topic exchange (routing key match.<job_id>).",
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().IntVar(&workerCount, "workers", 0, "Number of consumers (default from config)")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	cfg := app.cfg
	if cfg.RabbitMQURL == "" {
		return fmt.Errorf("RABBITMQ_URL is required (set it in the environment or the config file)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var downloader storage.Downloader
	if cfg.S3Bucket != "" {
		d, err := storage.NewS3Downloader(ctx, storageOptions())
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		downloader = d
	} else {
		slog.Warn("no S3 bucket configured, only inline resume text will be ranked")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	defer func() { _ = conn.Close() }()

	publisher, err := worker.NewAMQPPublisher(conn, cfg.UpdatesExchange)
	if err != nil {
		return err
	}

	workers := workerCount
	if workers <= 0 {
		workers = cfg.Workers
	}

	processor := worker.NewProcessor(app.engine, downloader, publisher, cfg.RankConcurrency)
	pool := worker.NewPool(worker.Options{
		URL:      cfg.RabbitMQURL,
		Queue:    cfg.Queue,
		Exchange: cfg.UpdatesExchange,
		Workers:  workers,
	}, processor)

	slog.Info("starting consumer pool", "workers", workers, "queue", cfg.Queue)
	return pool.Run(ctx)
}

func storageOptions() storage.Options {
	return storage.Options{
		Bucket:          app.cfg.S3Bucket,
		Endpoint:        app.cfg.S3Endpoint,
		Region:          app.cfg.S3Region,
		AccessKeyID:     app.cfg.S3AccessKey,
		SecretAccessKey: app.cfg.S3SecretKey,
	}
}
