package db_models

import "gorm.io/datatypes"

// Setting is a singleton JSON document keyed by name ("site", "checkout",
// "footer", "marketing"). The typed payloads live in the settings service.
type Setting struct {
	BaseModel
	Name    string         `gorm:"uniqueIndex"`
	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
