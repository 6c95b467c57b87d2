package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"oneconversion/internal/gateway"
	"oneconversion/internal/models/db_models"
	"oneconversion/internal/repositories"
)

// WatcherConfig controls the reconciliation loop. Tests inject millisecond
// values; production uses the defaults below.
type WatcherConfig struct {
	PollInterval time.Duration
	Deadline     time.Duration
}

func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		PollInterval: 5 * time.Second,
		Deadline:     5 * time.Minute,
	}
}

// PaymentWatcher drives a sale from Pendente to a terminal status by polling
// the gateway. Polls for one transaction are strictly sequential; the loop
// never issues a new poll while a previous one is in flight.
type PaymentWatcher struct {
	gateway gateway.Client
	sales   repositories.SaleRepositoryInterface
	logger  *zap.Logger
	cfg     WatcherConfig
}

func NewPaymentWatcher(
	gw gateway.Client,
	sales repositories.SaleRepositoryInterface,
	logger *zap.Logger,
	cfg WatcherConfig,
) *PaymentWatcher {
	return &PaymentWatcher{
		gateway: gw,
		sales:   sales,
		logger:  logger,
		cfg:     cfg,
	}
}

// PollOnce runs a single fetch-translate-store cycle. A 404 from the
// provider means the charge has not propagated yet and reads as Pendente.
// The store is only touched when a terminal status is observed.
func (w *PaymentWatcher) PollOnce(ctx context.Context, transactionID string) (db_models.SaleStatus, error) {
	rawStatus, err := w.gateway.FetchChargeStatus(ctx, transactionID)
	if errors.Is(err, gateway.ErrTransactionNotFound) {
		return db_models.SaleStatusPendente, nil
	}
	if err != nil {
		return "", err
	}

	status := gateway.TranslateStatus(rawStatus)
	if status.IsTerminal() {
		if err := w.sales.UpdateStatus(ctx, transactionID, status); err != nil {
			return "", err
		}
	}
	return status, nil
}

// Watch polls until a terminal status is observed, the deadline passes, or
// ctx is canceled. The returned channel receives the terminal status at most
// once and is then closed; on deadline or cancellation it closes without a
// value and the sale stays Pendente. Cancellation never reverts state that
// was already written.
func (w *PaymentWatcher) Watch(ctx context.Context, transactionID string) <-chan db_models.SaleStatus {
	done := make(chan db_models.SaleStatus, 1)

	go func() {
		defer close(done)

		ticker := time.NewTicker(w.cfg.PollInterval)
		defer ticker.Stop()
		deadline := time.NewTimer(w.cfg.Deadline)
		defer deadline.Stop()

		w.logger.Info("watching PIX transaction", zap.String("transaction_id", transactionID))

		for {
			select {
			case <-ctx.Done():
				return
			case <-deadline.C:
				// Soft timeout: the sale stays Pendente, nobody is notified.
				w.logger.Info("watch deadline reached, leaving sale pending",
					zap.String("transaction_id", transactionID))
				return
			case <-ticker.C:
				status, err := w.PollOnce(ctx, transactionID)
				if err != nil {
					// One failed poll must not abort the loop.
					w.logger.Warn("status poll failed",
						zap.String("transaction_id", transactionID),
						zap.Error(err))
					continue
				}
				if status.IsTerminal() {
					w.logger.Info("transaction settled",
						zap.String("transaction_id", transactionID),
						zap.String("status", string(status)))
					done <- status
					return
				}
			}
		}
	}()

	return done
}
