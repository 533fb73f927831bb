package services

import (
	"encoding/json"
	"fmt"
	"log"
	_ "time/tzdata"

	"pousada/config"

	"github.com/olahol/melody"
)

// BoardEvent sự kiện thay đổi bảng phòng gửi qua websocket
type BoardEvent struct {
	Type   string `json:"type"`
	StayID uint   `json:"stayId,omitempty"`
	RoomID uint   `json:"roomId,omitempty"`
}

// BroadcastBoardChange thông báo cho các màn hình lễ tân đang mở
func BroadcastBoardChange(m *melody.Melody, event BoardEvent) {
	if m == nil {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Lỗi khi mã hóa sự kiện websocket: %v", err)
		return
	}
	m.Broadcast(b)
}

// NightCloseAdapter cho phép jobs gọi đóng đêm mà không phụ thuộc services
type NightCloseAdapter struct {
	staySvc *StayService
}

func NewNightCloseAdapter(staySvc *StayService) *NightCloseAdapter {
	return &NightCloseAdapter{staySvc: staySvc}
}

func (a *NightCloseAdapter) CloseNights(m *melody.Melody) error {
	return CloseNightsAndNotify(m, a.staySvc)
}

// CloseNightsAndNotify đóng các pernoite hết hạn rồi thông báo và xóa cache.
// Được gọi bởi cron 0h hằng ngày.
func CloseNightsAndNotify(m *melody.Melody, staySvc *StayService) error {
	closed, err := staySvc.CloseExpiredNights()
	if err != nil {
		log.Println("❌ Lỗi khi đóng đêm:", err)
		return err
	}

	if closed == 0 {
		log.Println("ℹ️ Không có pernoite nào cần đóng đêm hôm nay.")
		return nil
	}

	if config.RedisClient != nil {
		if err := DeletePatternFromRedis(config.Ctx, config.RedisClient, "rooms:board:*"); err != nil {
			log.Println("❌ Lỗi khi xóa cache bảng phòng:", err)
		}
	}

	BroadcastBoardChange(m, BoardEvent{Type: "night_closed"})

	log.Println(fmt.Sprintf("✅ Đã đóng đêm cho %d pernoite.", closed))
	return nil
}
