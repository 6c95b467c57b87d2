package request_models

type CreatePaymentRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ProductSlug string `json:"product_slug" binding:"required"`
}

// PushInPayWebhook is the subset of the provider's webhook payload the
// reconciliation cares about.
type PushInPayWebhook struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
