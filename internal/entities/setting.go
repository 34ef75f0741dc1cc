package entities

import (
	"time"
)

// Setting is a single key/value slot. The favourites set and the user
// preferences are each persisted as one row.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeyFavoriteEntries = "favorite_entries"

	// User preferences
	SettingKeyTextSize    = "text_size"
	SettingKeyColorScheme = "color_scheme"
)
