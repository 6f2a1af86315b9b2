package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the resume parse workers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWorkers(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorkers(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	container.Worker.Start(ctx)
	<-ctx.Done()

	logx.Info("Waiting for workers to finish...")
	container.Worker.Wait()
	logx.Info("Workers exited")
	return nil
}
