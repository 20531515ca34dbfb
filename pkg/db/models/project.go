package models

import "time"

// Project represents a customer installation that references catalog
// components.
type Project struct {
	ID                 string    `gorm:"column:id;primaryKey" json:"id"`
	CustomerName       string    `gorm:"column:customerName;not null" json:"customerName"`
	Street             string    `gorm:"column:street;not null" json:"street"`
	City               string    `gorm:"column:city;not null" json:"city"`
	ZipCode            string    `gorm:"column:zipCode;not null" json:"zipCode"`
	Phone              *string   `gorm:"column:phone" json:"phone,omitempty"`
	Email              *string   `gorm:"column:email" json:"email,omitempty"`
	AnlageKwp          float64   `gorm:"column:anlageKwp;not null" json:"anlageKwp"`
	ModuleQuantity     int       `gorm:"column:moduleQuantity;not null" json:"moduleQuantity"`
	SelectedModule     *string   `gorm:"column:selectedModule" json:"selectedModule,omitempty"`
	SelectedInverter   *string   `gorm:"column:selectedInverter" json:"selectedInverter,omitempty"`
	RoofOrientation    float64   `gorm:"column:roofOrientation;not null" json:"roofOrientation"`
	RoofTilt           float64   `gorm:"column:roofTilt;not null" json:"roofTilt"`
	RoofArea           *float64  `gorm:"column:roofArea" json:"roofArea,omitempty"`
	InstallationType   string    `gorm:"column:installationType;not null" json:"installationType"`
	StorageCapacityKwh *float64  `gorm:"column:storageCapacityKwh" json:"storageCapacityKwh,omitempty"`
	SelectedStorage    *string   `gorm:"column:selectedStorage" json:"selectedStorage,omitempty"`
	Latitude           *float64  `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude          *float64  `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Module   *SolarModule `gorm:"foreignKey:SelectedModule" json:"-"`
	Inverter *Inverter    `gorm:"foreignKey:SelectedInverter" json:"-"`
	Storage  *Storage     `gorm:"foreignKey:SelectedStorage" json:"-"`
}

// TableName keeps the historical table name used by existing databases.
func (Project) TableName() string {
	return "customer_projects"
}
