package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"oneconversion/internal/gateway"
	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/request_models"
	"oneconversion/internal/models/response_models"
	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

type PaymentServiceInterface interface {
	CreatePayment(ctx context.Context, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error)
	CheckPaymentStatus(ctx context.Context, transactionID string) (db_models.SaleStatus, error)
	HandleWebhook(ctx context.Context, payload request_models.PushInPayWebhook) error
}

type PaymentService struct {
	gateway  gateway.Client
	sales    repositories.SaleRepositoryInterface
	products repositories.ProductRepositoryInterface
	watcher  *PaymentWatcher
	logger   *zap.Logger

	// watchCtx outlives individual requests so background polling survives
	// the HTTP response; Close cancels every active watch.
	watchCtx    context.Context
	cancelWatch context.CancelFunc
}

func NewPaymentService(
	gw gateway.Client,
	sales repositories.SaleRepositoryInterface,
	products repositories.ProductRepositoryInterface,
	watcher *PaymentWatcher,
	logger *zap.Logger,
) *PaymentService {
	ctx, cancel := context.WithCancel(context.Background())
	return &PaymentService{
		gateway:     gw,
		sales:       sales,
		products:    products,
		watcher:     watcher,
		logger:      logger,
		watchCtx:    ctx,
		cancelWatch: cancel,
	}
}

// Close stops all background watches. Committed sale state is untouched.
func (s *PaymentService) Close() {
	s.cancelWatch()
}

// CreatePayment charges the gateway and records the sale. The sale row is
// the commit point: once it exists the charge is "in flight" even if every
// later poll fails. No row is written when the charge itself fails.
func (s *PaymentService) CreatePayment(ctx context.Context, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error) {
	product, err := s.products.FindBySlug(ctx, request.ProductSlug)
	if err != nil {
		s.logger.Error("product lookup failed", zap.String("slug", request.ProductSlug), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	if product.PriceInCents <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	charge, err := s.gateway.CreateCharge(ctx, product.PriceInCents)
	if err != nil {
		return nil, err
	}

	sale := &db_models.Sale{
		TransactionID: charge.TransactionID,
		CustomerName:  request.Name,
		CustomerEmail: request.Email,
		ProductName:   product.Name,
		AmountInCents: product.PriceInCents,
		Status:        db_models.SaleStatusPendente,
		PixCode:       charge.PixCode,
		SaleDate:      time.Now(),
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		if errors.Is(err, utils.ErrInvalidSale) {
			return nil, err
		}
		s.logger.Error("failed to persist sale",
			zap.String("transaction_id", charge.TransactionID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("sale recorded",
		zap.String("transaction_id", charge.TransactionID),
		zap.String("product", product.Name),
		zap.Int64("amount_in_cents", product.PriceInCents))

	s.watcher.Watch(s.watchCtx, charge.TransactionID)

	return &response_models.PaymentResponse{
		TransactionID: charge.TransactionID,
		PixCode:       charge.PixCode,
		QRCodeImage:   charge.QRCodeImage,
		Status:        string(db_models.SaleStatusPendente),
	}, nil
}

// CheckPaymentStatus is the operator's "check now" action: one synchronous
// poll cycle whose outcome (or failure) is surfaced to the caller.
func (s *PaymentService) CheckPaymentStatus(ctx context.Context, transactionID string) (db_models.SaleStatus, error) {
	sale, err := s.sales.FindByTransactionID(ctx, transactionID)
	if err != nil {
		s.logger.Error("sale lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if sale == nil {
		return "", utils.ErrSaleNotFound
	}

	return s.watcher.PollOnce(ctx, transactionID)
}

// HandleWebhook applies a provider-pushed status. Unknown transactions are
// acked silently so the provider does not retry forever.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload request_models.PushInPayWebhook) error {
	status := gateway.TranslateStatus(payload.Status)

	s.logger.Info("webhook received",
		zap.String("transaction_id", payload.ID),
		zap.String("raw_status", payload.Status),
		zap.String("status", string(status)))

	if !status.IsTerminal() {
		return nil
	}

	if err := s.sales.UpdateStatus(ctx, payload.ID, status); err != nil {
		s.logger.Error("webhook status update failed",
			zap.String("transaction_id", payload.ID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
