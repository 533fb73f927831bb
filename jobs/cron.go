package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// NightCloser định nghĩa interface cho việc đóng đêm tự động
type NightCloser interface {
	CloseNights(m *melody.Melody) error
}

var nightCloser NightCloser

// SetNightCloser thiết lập implementation cho NightCloser
func SetNightCloser(closer NightCloser) {
	nightCloser = closer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày, đóng các pernoite đã qua ngày trả phòng
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy đóng đêm tự động lúc: %v", now)
		if nightCloser == nil {
			log.Printf("Lỗi: NightCloser chưa được thiết lập")
			return
		}
		if err := nightCloser.CloseNights(m); err != nil {
			log.Printf("Lỗi khi đóng đêm: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
