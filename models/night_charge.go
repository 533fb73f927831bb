package models

import "time"

// NightCharge một đêm lưu trú đã được tính tiền (diária)
type NightCharge struct {
	ID         uint                 `json:"id" gorm:"primaryKey"`
	StayID     uint                 `json:"stayId" gorm:"index"`
	RoomID     uint                 `json:"roomId"`
	StartDate  time.Time            `json:"startDate"`
	EndDate    time.Time            `json:"endDate"`
	Rate       float64              `json:"rate"`
	Total      float64              `json:"total"`
	GuestCount int                  `json:"guestCount"`
	Sequence   int                  `json:"sequence"`
	CreatedAt  time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`
	Guests     []NightChargeGuest   `json:"guests,omitempty" gorm:"foreignKey:NightChargeID"`
	Payments   []NightChargePayment `json:"payments,omitempty" gorm:"foreignKey:NightChargeID"`
}

// NightChargeGuest liên kết khách với một đêm, đánh dấu người đại diện
type NightChargeGuest struct {
	ID             uint  `json:"id" gorm:"primaryKey"`
	NightChargeID  uint  `json:"nightChargeId" gorm:"index"`
	GuestID        uint  `json:"guestId"`
	Guest          Guest `json:"guest" gorm:"foreignKey:GuestID"`
	Representative bool  `json:"representative" gorm:"default:false"`
}

type NightChargePayment struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	NightChargeID uint         `json:"nightChargeId" gorm:"index"`
	Amount        float64      `json:"amount"`
	PaidAt        time.Time    `json:"paidAt"`
	PaymentTypeID uint         `json:"paymentTypeId"`
	PaymentType   *PaymentType `json:"paymentType,omitempty" gorm:"foreignKey:PaymentTypeID"`
}
