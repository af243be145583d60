package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ContractExpiryJob manages the scheduled expiry sweep of merchant contracts.
// Runs at the top of every hour to expire active contracts whose end date has
// passed without a manual transition.
type ContractExpiryJob struct {
	handler commands.ExpireContractsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewContractExpiryJob creates a new job for the contract expiry sweep.
func NewContractExpiryJob(handler commands.ExpireContractsCommandHandler, logger *slog.Logger) *ContractExpiryJob {
	return &ContractExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "contract_expiry_job"),
	}
}

// Start begins the contract expiry job to run hourly.
func (j *ContractExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireContractsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Contract expiry job failed to build command", "error", cmdErr)
			return
		}

		count, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Contract expiry job failed", "error", handleErr)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Contracts expired", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contract expiry job started (running hourly)")
	return nil
}

// Stop stops the contract expiry job.
func (j *ContractExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contract expiry job stopped")
}
