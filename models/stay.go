package models

import (
	"time"
)

// Stay status constants
const (
	StayStatusActive                 = 0
	StayStatusNightClosed            = 1
	StayStatusFinished               = 2
	StayStatusCancelled              = 3
	StayStatusFinishedPendingPayment = 4
)

type Stay struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RoomID        uint          `json:"roomId"`
	Room          Room          `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate   time.Time     `json:"checkInDate"`
	CheckOutDate  time.Time     `json:"checkOutDate"`
	ArrivalTime   string        `json:"arrivalTime,omitempty"`
	DepartureTime string        `json:"departureTime,omitempty"`
	Status        int           `json:"status" gorm:"default:0"`
	Active        bool          `json:"active" gorm:"default:true"`
	TotalAmount   float64       `json:"totalAmount"`
	CancelReason  string        `json:"cancelReason,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	NightCharges  []NightCharge `json:"nightCharges,omitempty" gorm:"foreignKey:StayID"`
}

// CoversDate pernoite có bao phủ ngày này không
func (s *Stay) CoversDate(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	return !day.Before(s.CheckInDate.Truncate(24*time.Hour)) &&
		!day.After(s.CheckOutDate.Truncate(24*time.Hour))
}
