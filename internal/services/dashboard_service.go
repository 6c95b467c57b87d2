package services

import (
	"context"

	"go.uber.org/zap"

	"oneconversion/internal/models/db_models"
	"oneconversion/internal/models/response_models"
	"oneconversion/internal/repositories"
	"oneconversion/pkg/utils"
)

const recentSalesLimit = 10

type DashboardServiceInterface interface {
	GetReport(ctx context.Context) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	sales  repositories.SaleRepositoryInterface
	logger *zap.Logger
}

func NewDashboardService(sales repositories.SaleRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{
		sales:  sales,
		logger: logger,
	}
}

func (s *DashboardService) GetReport(ctx context.Context) (*response_models.DashboardReport, error) {
	report := &response_models.DashboardReport{}

	counters := []struct {
		status db_models.SaleStatus
		target *int64
	}{
		{db_models.SaleStatusAprovado, &report.ApprovedSales},
		{db_models.SaleStatusPendente, &report.PendingSales},
		{db_models.SaleStatusRecusado, &report.RefusedSales},
		{db_models.SaleStatusReembolsado, &report.RefundedSales},
		{db_models.SaleStatusExpirado, &report.ExpiredSales},
	}
	for _, c := range counters {
		count, err := s.sales.CountByStatus(ctx, c.status)
		if err != nil {
			s.logger.Error("failed to count sales", zap.String("status", string(c.status)), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		*c.target = count
		report.TotalSales += count
	}

	approvedAmount, err := s.sales.SumAmountByStatus(ctx, db_models.SaleStatusAprovado)
	if err != nil {
		s.logger.Error("failed to sum approved sales", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	report.ApprovedAmountInCents = approvedAmount

	recent, err := s.sales.ListRecent(ctx, recentSalesLimit)
	if err != nil {
		s.logger.Error("failed to list recent sales", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	report.RecentSales = make([]response_models.SaleResponse, 0, len(recent))
	for _, sale := range recent {
		report.RecentSales = append(report.RecentSales, toSaleResponse(sale))
	}

	return report, nil
}
