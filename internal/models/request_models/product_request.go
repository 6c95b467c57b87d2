package request_models

type ProductRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceInCents int64  `json:"price_in_cents" binding:"required"`
	BannerURL    string `json:"banner_url"`
	LogoURL      string `json:"logo_url"`
}
