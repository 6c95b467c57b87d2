package gateway

import (
	"strings"

	"oneconversion/internal/models/db_models"
)

var statusMap = map[string]db_models.SaleStatus{
	"paid":       db_models.SaleStatusAprovado,
	"approved":   db_models.SaleStatusAprovado,
	"refused":    db_models.SaleStatusRecusado,
	"pending":    db_models.SaleStatusPendente,
	"in_process": db_models.SaleStatusPendente,
	"expired":    db_models.SaleStatusExpirado,
	"refunded":   db_models.SaleStatusReembolsado,
	"chargeback": db_models.SaleStatusReembolsado,
}

// TranslateStatus maps a raw provider status onto the internal sale status.
// Unknown or empty input falls back to Pendente.
func TranslateStatus(rawStatus string) db_models.SaleStatus {
	if status, ok := statusMap[strings.ToLower(rawStatus)]; ok {
		return status
	}
	return db_models.SaleStatusPendente
}
