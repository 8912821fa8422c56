package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"lytefood/internal/core/application/usecases/commands"
)

// CourierBoardJob manages the scheduled refresh of the courier board.
// Runs every 30 seconds to pull ready and en-route orders from the order
// service into the board cache.
type CourierBoardJob struct {
	handler      commands.RefreshCourierBoardCommandHandler
	serviceToken string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewCourierBoardJob creates a new job for refreshing the courier board.
// The service token authenticates the board-wide order listing against the
// order service.
func NewCourierBoardJob(
	handler commands.RefreshCourierBoardCommandHandler,
	serviceToken string,
	logger *slog.Logger,
) *CourierBoardJob {
	return &CourierBoardJob{
		handler:      handler,
		serviceToken: serviceToken,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "courier_board_job"),
	}
}

// Start begins the courier board job to run every 30 seconds.
func (j *CourierBoardJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRefreshCourierBoardCommand(j.serviceToken)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Courier board job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Courier board refresh failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier board job started (running every 30 seconds)")
	return nil
}

// Stop stops the courier board job.
func (j *CourierBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier board job stopped")
}
