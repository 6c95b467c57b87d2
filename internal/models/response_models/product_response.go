package response_models

type ProductResponse struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceInCents int64  `json:"price_in_cents"`
	BannerURL    string `json:"banner_url"`
	LogoURL      string `json:"logo_url"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
