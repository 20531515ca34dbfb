package models

import (
	"time"

	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// StorageWarranty holds product warranty in years and guaranteed cycles.
type StorageWarranty struct {
	Product int `gorm:"column:warranty_product;not null" json:"product"`
	Cycles  int `gorm:"column:warranty_cycles;not null" json:"cycles"`
}

// TemperatureRange holds the operating envelope in degrees Celsius.
type TemperatureRange struct {
	Min float64 `gorm:"column:temperatureRange_min;not null" json:"min"`
	Max float64 `gorm:"column:temperatureRange_max;not null" json:"max"`
}

// Storage represents a battery storage unit in the catalog.
type Storage struct {
	ID               string                  `gorm:"column:id;primaryKey" json:"id"`
	Manufacturer     string                  `gorm:"column:manufacturer;not null;index" json:"manufacturer"`
	Model            string                  `gorm:"column:model;not null" json:"model"`
	Type             enums.StorageType       `gorm:"column:type;not null" json:"type"`
	Capacity         float64                 `gorm:"column:capacity;not null" json:"capacity"`
	UsableCapacity   float64                 `gorm:"column:usableCapacity;not null;index" json:"usableCapacity"`
	PowerKw          float64                 `gorm:"column:powerKw;not null" json:"powerKw"`
	Efficiency       float64                 `gorm:"column:efficiency;not null" json:"efficiency"`
	CycleLife        int                     `gorm:"column:cycleLife;not null" json:"cycleLife"`
	Voltage          float64                 `gorm:"column:voltage;not null" json:"voltage"`
	Technology       enums.StorageTechnology `gorm:"column:technology;not null" json:"technology"`
	Price            *float64                `gorm:"column:price" json:"price,omitempty"`
	Warranty         StorageWarranty         `gorm:"embedded" json:"warranty"`
	Dimensions       UnitDimensions          `gorm:"embedded" json:"dimensions"`
	Weight           float64                 `gorm:"column:weight;not null" json:"weight"`
	TemperatureRange TemperatureRange        `gorm:"embedded" json:"temperatureRange"`
	Features         types.FeatureList       `gorm:"column:features;not null" json:"features"`
	CreatedAt        time.Time               `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
