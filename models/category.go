package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:CategoryID"`
}

// CategoryRate giá mỗi đêm theo loại phòng và số lượng khách
type CategoryRate struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"categoryId" gorm:"index:idx_category_guest_count,unique"`
	GuestCount int       `json:"guestCount" gorm:"index:idx_category_guest_count,unique"`
	Rate       float64   `json:"rate"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
