package models

import (
	"time"

	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// ModuleDimensions holds the physical size of a panel in millimeters.
type ModuleDimensions struct {
	Length    float64 `gorm:"column:dimensions_length;not null" json:"length"`
	Width     float64 `gorm:"column:dimensions_width;not null" json:"width"`
	Thickness float64 `gorm:"column:dimensions_thickness;not null" json:"thickness"`
}

// ModuleWarranty holds product and performance warranty terms in years.
type ModuleWarranty struct {
	Product     int `gorm:"column:warranty_product;not null" json:"product"`
	Performance int `gorm:"column:warranty_performance;not null" json:"performance"`
}

// SolarModule represents a photovoltaic panel in the catalog.
type SolarModule struct {
	ID                     string                 `gorm:"column:id;primaryKey" json:"id"`
	Manufacturer           string                 `gorm:"column:manufacturer;not null;index" json:"manufacturer"`
	Model                  string                 `gorm:"column:model;not null" json:"model"`
	PowerWp                float64                `gorm:"column:powerWp;not null;index" json:"powerWp"`
	Efficiency             float64                `gorm:"column:efficiency;not null" json:"efficiency"`
	Technology             enums.ModuleTechnology `gorm:"column:technology;not null" json:"technology"`
	Dimensions             ModuleDimensions       `gorm:"embedded" json:"dimensions"`
	Weight                 float64                `gorm:"column:weight;not null" json:"weight"`
	PricePerWp             *float64               `gorm:"column:pricePerWp" json:"pricePerWp,omitempty"`
	Warranty               ModuleWarranty         `gorm:"embedded" json:"warranty"`
	TemperatureCoefficient float64                `gorm:"column:temperatureCoefficient;not null" json:"temperatureCoefficient"`
	MaxSystemVoltage       float64                `gorm:"column:maxSystemVoltage;not null" json:"maxSystemVoltage"`
	ShortCircuitCurrent    float64                `gorm:"column:shortCircuitCurrent;not null" json:"shortCircuitCurrent"`
	OpenCircuitVoltage     float64                `gorm:"column:openCircuitVoltage;not null" json:"openCircuitVoltage"`
	CreatedAt              time.Time              `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName keeps the historical table name used by existing databases.
func (SolarModule) TableName() string {
	return "modules"
}
