package response_models

type PaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	PixCode       string `json:"pix_code"`
	QRCodeImage   string `json:"qr_code_image"`
	Status        string `json:"status"`
}

type PaymentStatusResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}
