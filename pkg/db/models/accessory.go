package models

import (
	"time"

	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// Accessory represents auxiliary catalog equipment such as wallboxes or
// monitoring hardware.
type Accessory struct {
	ID             string                  `gorm:"column:id;primaryKey" json:"id"`
	Name           string                  `gorm:"column:name;not null" json:"name"`
	Category       enums.AccessoryCategory `gorm:"column:category;not null;index" json:"category"`
	Manufacturer   string                  `gorm:"column:manufacturer;not null;index" json:"manufacturer"`
	Model          string                  `gorm:"column:model;not null" json:"model"`
	Power          float64                 `gorm:"column:power;not null" json:"power"`
	Price          float64                 `gorm:"column:price;not null" json:"price"`
	Features       types.FeatureList       `gorm:"column:features;not null" json:"features"`
	Description    string                  `gorm:"column:description;not null" json:"description"`
	Specifications types.SpecMap           `gorm:"column:specifications" json:"specifications,omitempty"`
	CreatedAt      time.Time               `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
