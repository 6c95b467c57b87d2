package response_models

type SaleResponse struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ProductName   string `json:"product_name"`
	AmountInCents int64  `json:"amount_in_cents"`
	Status        string `json:"status"`
	PixCode       string `json:"pix_code"`
	SaleDate      string `json:"sale_date"`
}

// SalesMetadata summarizes a sales listing for the dashboard table header.
type SalesMetadata struct {
	Quantity              int   `json:"quantity"`
	Aprovado              int   `json:"aprovado"`
	Pendente              int   `json:"pendente"`
	Recusado              int   `json:"recusado"`
	Reembolsado           int   `json:"reembolsado"`
	Expirado              int   `json:"expirado"`
	TotalAmountInCents    int64 `json:"total_amount_in_cents"`
	ApprovedAmountInCents int64 `json:"approved_amount_in_cents"`
}
