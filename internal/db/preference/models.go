package preference

import (
	"time"
)

// FahrenheitKey is the single preference the service persists.
const FahrenheitKey = "isFahrenheit"

type Preference struct {
	Name      string    `json:"name" gorm:"primaryKey;column:name"`
	Value     bool      `json:"value" gorm:"column:value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Preference) TableName() string {
	return "preferences"
}
