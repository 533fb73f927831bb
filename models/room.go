package models

import (
	"fmt"
	"time"

	"pousada/constants"
)

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description"`
	CategoryID  uint      `json:"categoryId"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Capacity    int       `json:"capacity"`
	DoubleBeds  int       `json:"doubleBeds"`
	SingleBeds  int       `json:"singleBeds"`
	BunkBeds    int       `json:"bunkBeds"`
	Hammocks    int       `json:"hammocks"`
	Status      int       `json:"status" gorm:"default:0"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidateStatus 0 nghĩa là chưa gán trạng thái thủ công
func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusUnset || r.Status > constants.RoomStatusMaintenance {
		return fmt.Errorf("invalid status: %d, must be between 0 and 6", r.Status)
	}
	return nil
}

// HasAdminStatus trạng thái thủ công có được gán hay không
func (r *Room) HasAdminStatus() bool {
	return r.Status != constants.RoomStatusUnset
}
