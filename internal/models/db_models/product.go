package db_models

type Product struct {
	BaseModel
	Slug         string `gorm:"uniqueIndex"`
	Name         string
	Description  string
	PriceInCents int64
	BannerURL    string
	LogoURL      string
}
