package models

import "time"

// Company represents an installer or vendor whose details appear on offers.
type Company struct {
	ID                string    `gorm:"column:id;primaryKey" json:"id"`
	Name              string    `gorm:"column:name;not null" json:"name"`
	Street            string    `gorm:"column:street;not null" json:"street"`
	City              string    `gorm:"column:city;not null" json:"city"`
	ZipCode           string    `gorm:"column:zipCode;not null" json:"zipCode"`
	Phone             string    `gorm:"column:phone;not null" json:"phone"`
	Email             string    `gorm:"column:email;not null" json:"email"`
	Website           *string   `gorm:"column:website" json:"website,omitempty"`
	LogoBase64        *string   `gorm:"column:logoBase64" json:"logoBase64,omitempty"`
	UmsatzsteuerNr    *string   `gorm:"column:umsatzsteuerNr" json:"umsatzsteuerNr,omitempty"`
	Handelsregister   *string   `gorm:"column:handelsregister" json:"handelsregister,omitempty"`
	Geschaeftsfuehrer *string   `gorm:"column:geschaeftsfuehrer" json:"geschaeftsfuehrer,omitempty"`
	BankName          *string   `gorm:"column:bankName" json:"bankName,omitempty"`
	IBAN              *string   `gorm:"column:iban" json:"iban,omitempty"`
	BIC               *string   `gorm:"column:bic" json:"bic,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
