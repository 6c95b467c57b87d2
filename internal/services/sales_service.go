package services

import (
	"context"

	"go.uber.org/zap"

	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/response_models"
	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

type SalesServiceInterface interface {
	ListSales(ctx context.Context) ([]response_models.SaleResponse, response_models.SalesMetadata, error)
	FindSale(ctx context.Context, transactionID string) (*response_models.SaleResponse, error)
}

type SalesService struct {
	sales  repositories.SaleRepositoryInterface
	logger *zap.Logger
}

func NewSalesService(sales repositories.SaleRepositoryInterface, logger *zap.Logger) SalesServiceInterface {
	return &SalesService{
		sales:  sales,
		logger: logger,
	}
}

func (s *SalesService) ListSales(ctx context.Context) ([]response_models.SaleResponse, response_models.SalesMetadata, error) {
	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list sales", zap.Error(err))
		return nil, response_models.SalesMetadata{}, utils.ErrDatabaseError
	}

	responses := make([]response_models.SaleResponse, 0, len(sales))
	metadata := response_models.SalesMetadata{}

	for _, sale := range sales {
		responses = append(responses, toSaleResponse(sale))

		metadata.Quantity++
		metadata.TotalAmountInCents += sale.AmountInCents
		switch sale.Status {
		case db_models.SaleStatusAprovado:
			metadata.Aprovado++
			metadata.ApprovedAmountInCents += sale.AmountInCents
		case db_models.SaleStatusPendente:
			metadata.Pendente++
		case db_models.SaleStatusRecusado:
			metadata.Recusado++
		case db_models.SaleStatusReembolsado:
			metadata.Reembolsado++
		case db_models.SaleStatusExpirado:
			metadata.Expirado++
		}
	}

	return responses, metadata, nil
}

func (s *SalesService) FindSale(ctx context.Context, transactionID string) (*response_models.SaleResponse, error) {
	sale, err := s.sales.FindByTransactionID(ctx, transactionID)
	if err != nil {
		s.logger.Error("failed to find sale", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if sale == nil {
		return nil, utils.ErrSaleNotFound
	}

	response := toSaleResponse(*sale)
	return &response, nil
}

func toSaleResponse(sale db_models.Sale) response_models.SaleResponse {
	return response_models.SaleResponse{
		ID:            sale.ID.String(),
		TransactionID: sale.TransactionID,
		CustomerName:  sale.CustomerName,
		CustomerEmail: sale.CustomerEmail,
		ProductName:   sale.ProductName,
		AmountInCents: sale.AmountInCents,
		Status:        string(sale.Status),
		PixCode:       sale.PixCode,
		SaleDate:      utils.FormatRFC3339BR(sale.SaleDate),
	}
}
