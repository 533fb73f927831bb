package models

type PaymentType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description"`
}
