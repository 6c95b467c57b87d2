package db_models

type Review struct {
	BaseModel
	Name      string
	Text      string `gorm:"type:text"`
	Rating    int    // 1-5
	AvatarURL string
}
