package models

import (
	"time"

	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// UnitDimensions holds the physical size of a wall or floor mounted unit in
// millimeters. Inverters and storages share the same column layout.
type UnitDimensions struct {
	Length float64 `gorm:"column:dimensions_length;not null" json:"length"`
	Width  float64 `gorm:"column:dimensions_width;not null" json:"width"`
	Height float64 `gorm:"column:dimensions_height;not null" json:"height"`
}

// Inverter represents a power inverter in the catalog.
type Inverter struct {
	ID              string             `gorm:"column:id;primaryKey" json:"id"`
	Manufacturer    string             `gorm:"column:manufacturer;not null;index" json:"manufacturer"`
	Model           string             `gorm:"column:model;not null" json:"model"`
	Type            enums.InverterType `gorm:"column:type;not null" json:"type"`
	PowerKw         float64            `gorm:"column:powerKw;not null;index" json:"powerKw"`
	Efficiency      float64            `gorm:"column:efficiency;not null" json:"efficiency"`
	MaxDcVoltage    float64            `gorm:"column:maxDcVoltage;not null" json:"maxDcVoltage"`
	StartupVoltage  float64            `gorm:"column:startupVoltage;not null" json:"startupVoltage"`
	MpptChannels    int                `gorm:"column:mpptChannels;not null" json:"mpptChannels"`
	MaxDcCurrent    float64            `gorm:"column:maxDcCurrent;not null" json:"maxDcCurrent"`
	AcVoltage       float64            `gorm:"column:acVoltage;not null" json:"acVoltage"`
	Price           *float64           `gorm:"column:price" json:"price,omitempty"`
	Warranty        int                `gorm:"column:warranty;not null" json:"warranty"`
	Dimensions      UnitDimensions     `gorm:"embedded" json:"dimensions"`
	Weight          float64            `gorm:"column:weight;not null" json:"weight"`
	ProtectionClass string             `gorm:"column:protectionClass;not null" json:"protectionClass"`
	Features        types.FeatureList  `gorm:"column:features;not null" json:"features"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
