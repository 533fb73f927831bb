package models

import "time"

type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj" gorm:"column:cnpj;uniqueIndex"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Guests    []Guest   `json:"guests,omitempty" gorm:"many2many:company_guests;"`
}
