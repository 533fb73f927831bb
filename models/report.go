package models

import "time"

// Report lançamento tài chính thủ công của lễ tân
type Report struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Description   string       `json:"description"`
	Amount        float64      `json:"amount"`
	Date          time.Time    `json:"date"`
	PaymentTypeID *uint        `json:"paymentTypeId"`
	PaymentType   *PaymentType `json:"paymentType,omitempty" gorm:"foreignKey:PaymentTypeID"`
	RoomID        *uint        `json:"roomId"`
	StayID        *uint        `json:"stayId"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
