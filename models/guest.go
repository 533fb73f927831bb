package models

import "time"

type Guest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf" gorm:"column:cpf;uniqueIndex"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	BirthDate *string   `json:"birthDate,omitempty"`
	Lodged    bool      `json:"lodged" gorm:"default:false"`
	StayCount int       `json:"stayCount" gorm:"default:0"`
	CityID    *uint     `json:"cityId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Companies []Company `json:"companies,omitempty" gorm:"many2many:company_guests;"`
}
