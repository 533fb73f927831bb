package controllers

import (
	"fmt"
	"strconv"
	"time"

	"pousada/config"
	"pousada/dto"
	"pousada/models"
	"pousada/response"
	"pousada/services"
	"pousada/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	statusSvc *services.RoomStatusService
	redis     *redis.Client
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) *RoomController {
	return &RoomController{
		statusSvc: services.NewRoomStatusService(services.RoomStatusServiceOptions{
			DB:     db,
			Logger: logger.NewDefaultLogger(logger.InfoLevel),
		}),
		redis: redisCli,
	}
}

// GetRooms godoc
// @Summary Bảng phòng cho lễ tân, gom theo loại phòng
// @Tags rooms
// @Router /api/v1/rooms [get]
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var filters dto.BoardFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Bộ lọc không hợp lệ")
		return
	}

	// Gộp với bộ lọc lần trước của phiên này
	if sessionId, ok := c.Get("sessionId"); ok && ctrl.redis != nil {
		key := sessionId.(string)
		if old, err := services.GetLastFilters(config.Ctx, ctrl.redis, key); err == nil && old != nil {
			if c.Query("remember") == "true" {
				services.MergeFilters(old, &filters)
			}
		}
		_ = services.SaveLastFilters(config.Ctx, ctrl.redis, key, &filters)
	}

	date := time.Now()
	if filters.Date != "" {
		parsed, err := time.Parse(dto.DateLayout, filters.Date)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày không hợp lệ")
			return
		}
		date = parsed
	}

	statusKey := "all"
	if filters.Status != nil {
		statusKey = strconv.Itoa(*filters.Status)
	}
	cacheKey := fmt.Sprintf("rooms:board:%s:%s:%s",
		date.Format("2006-01-02"), statusKey, filters.Search)

	if ctrl.redis != nil {
		var cached []dto.RoomBoardGroup
		if err := services.GetFromRedis(config.Ctx, ctrl.redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	board, err := ctrl.statusSvc.RoomBoard(date, filters.Status, filters.Search)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if ctrl.redis != nil {
		_ = services.SetToRedis(config.Ctx, ctrl.redis, cacheKey, board, 2*time.Minute)
	}

	response.Success(c, board)
}

// GetRoomStatus godoc
// @Summary Trạng thái của một phòng tại một ngày
// @Tags rooms
// @Router /api/v1/rooms/{id}/status [get]
func (ctrl *RoomController) GetRoomStatus(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dto.DateLayout, dateStr)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày không hợp lệ")
			return
		}
		date = parsed
	}

	status, err := ctrl.statusSvc.GetRoomStatus(uint(roomID), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"roomId": roomID, "status": status})
}

// GetRoomStatuses danh sách trạng thái cho dropdown
func GetRoomStatuses(c *gin.Context) {
	response.Success(c, services.ListStatuses())
}

// GetCategories danh sách loại phòng
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, categories)
}

// GetRoomsEnum danh sách phòng rút gọn cho dropdown
func GetRoomsEnum(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Order("id").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	type roomEnum struct {
		ID          uint   `json:"id"`
		Description string `json:"description"`
	}
	items := make([]roomEnum, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, roomEnum{ID: r.ID, Description: r.Description})
	}
	response.Success(c, items)
}

// CreateRoom godoc
// @Summary Tạo phòng mới
// @Tags rooms
// @Router /api/v1/rooms [post]
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Capacity:    req.Capacity,
		DoubleBeds:  req.DoubleBeds,
		SingleBeds:  req.SingleBeds,
		BunkBeds:    req.BunkBeds,
		Hammocks:    req.Hammocks,
		Status:      req.Status,
	}
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		response.BadRequest(c, "Loại phòng không tồn tại")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// UpdateRoom godoc
// @Summary Cập nhật phòng
// @Tags rooms
// @Router /api/v1/rooms/{id} [put]
func UpdateRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Description = req.Description
	room.CategoryID = req.CategoryID
	room.Capacity = req.Capacity
	room.DoubleBeds = req.DoubleBeds
	room.SingleBeds = req.SingleBeds
	room.BunkBeds = req.BunkBeds
	room.Hammocks = req.Hammocks
	room.Status = req.Status

	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	if config.RedisClient != nil {
		_ = services.DeletePatternFromRedis(config.Ctx, config.RedisClient, "rooms:board:*")
	}

	response.Success(c, room)
}

// ChangeRoomStatus godoc
// @Summary Gán trạng thái thủ công cho phòng, 0 để trở lại trạng thái suy ra
// @Tags rooms
// @Router /api/v1/roomStatus [put]
func ChangeRoomStatus(c *gin.Context) {
	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Model(&room).Update("status", req.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	if config.RedisClient != nil {
		_ = services.DeletePatternFromRedis(config.Ctx, config.RedisClient, "rooms:board:*")
	}

	response.Success(c, room)
}
