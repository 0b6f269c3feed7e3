package models

// ConfigEntry represents one admin configuration value stored in the database.
type ConfigEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName keeps the legacy table name.
func (ConfigEntry) TableName() string {
	return "admin_config"
}
