package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fuelsettlement/internal/core/application/usecases/commands"
	"fuelsettlement/internal/core/ports"
	"fuelsettlement/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// SettlementFinalizationJob periodically moves delivered orders to settled.
// Payout already happened on delivery confirmation; this is the automated
// follow-up that closes the books when the supplier never does it manually.
type SettlementFinalizationJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.SettleOrderCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSettlementFinalizationJob creates the finalization job.
// Uses the order unit of work to find delivered orders and the settle
// handler to finalize each one.
func NewSettlementFinalizationJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.SettleOrderCommandHandler,
	logger *slog.Logger,
) *SettlementFinalizationJob {
	return &SettlementFinalizationJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(),
		logger:     logger.With("component", "settlement_finalization_job"),
	}
}

// Start begins the finalization job, running once a minute.
func (j *SettlementFinalizationJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement finalization job started (running every minute)")
	return nil
}

// Stop stops the finalization job.
func (j *SettlementFinalizationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement finalization job stopped")
}

func (j *SettlementFinalizationJob) run() {
	ctx := context.Background()

	orderIDs, err := j.deliveredOrderIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list delivered orders", "error", err)
		return
	}

	for _, orderID := range orderIDs {
		cmd, cmdErr := commands.NewAutomatedSettleOrderCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build settle command", "order_id", orderID, "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A supplier settling the same order concurrently is expected.
			if errors.Is(handleErr, errs.ErrInvalidTransition) || errors.Is(handleErr, ports.ErrConcurrentUpdate) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to finalize settlement", "order_id", orderID, "error", handleErr)
		}
	}
}

func (j *SettlementFinalizationJob) deliveredOrderIDs(ctx context.Context) ([]int64, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInDeliveredStatus(ctx)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID())
	}

	return orderIDs, nil
}
