package db_models

import "time"

type SaleStatus string

const (
	SaleStatusPendente    SaleStatus = "Pendente"
	SaleStatusAprovado    SaleStatus = "Aprovado"
	SaleStatusRecusado    SaleStatus = "Recusado"
	SaleStatusReembolsado SaleStatus = "Reembolsado"
	SaleStatusExpirado    SaleStatus = "Expirado"
)

// IsTerminal reports whether a status ends a sale's lifecycle. Pendente is
// the only non-terminal state.
func (s SaleStatus) IsTerminal() bool {
	switch s {
	case SaleStatusAprovado, SaleStatusRecusado, SaleStatusReembolsado, SaleStatusExpirado:
		return true
	}
	return false
}

// Sale is one checkout attempt. Product name and amount are snapshots taken
// at sale time, not references into the catalog.
type Sale struct {
	BaseModel
	TransactionID string `gorm:"uniqueIndex"` // gateway charge id, reconciliation key
	CustomerName  string
	CustomerEmail string
	ProductName   string
	AmountInCents int64
	Status        SaleStatus `gorm:"index;default:'Pendente'"`
	PixCode       string     `gorm:"type:text"`
	SaleDate      time.Time
}
