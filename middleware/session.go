package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader nhận diện một màn hình lễ tân, dùng làm khóa nhớ bộ lọc
// bảng phòng trong Redis
const SessionHeader = "X-Session-ID"

// SessionMiddleware đọc session của màn hình lễ tân từ header, chưa có
// thì cấp một uuid mới và trả lại cho client giữ
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(SessionHeader)
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)
		c.Writer.Header().Set(SessionHeader, sessionId)

		c.Next()
	}
}
