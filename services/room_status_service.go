package services

import (
	"errors"
	"strings"
	"time"

	"pousada/constants"
	"pousada/dto"
	appErrors "pousada/errors"
	"pousada/models"
	"pousada/services/logger"

	"gorm.io/gorm"
)

type RoomStatusServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// RoomStatusService suy ra trạng thái phòng từ pernoite và dựng bảng lễ tân
type RoomStatusService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewRoomStatusService(opts RoomStatusServiceOptions) *RoomStatusService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomStatusService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// ResolveRoomStatus trạng thái thủ công luôn thắng, còn lại suy từ pernoite
// mới nhất của phòng. Không có pernoite thì phòng trống.
func ResolveRoomStatus(room *models.Room, newestStay *models.Stay, date time.Time) int {
	if room.HasAdminStatus() {
		return room.Status
	}

	if newestStay == nil {
		return constants.RoomStatusAvailable
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	checkIn := truncateDay(newestStay.CheckInDate)
	checkOut := truncateDay(newestStay.CheckOutDate)

	switch {
	case checkIn.After(day):
		return constants.RoomStatusReserved
	case checkOut.Before(day):
		return constants.RoomStatusNightClosed
	default:
		return constants.RoomStatusOccupied
	}
}

// newestStayByRoom pernoite hoạt động mới nhất của từng phòng,
// trùng ngày bắt đầu thì pernoite tạo sau thắng
func newestStayByRoom(stays []models.Stay) map[uint]*models.Stay {
	newest := make(map[uint]*models.Stay)
	for i := range stays {
		stay := &stays[i]
		current, ok := newest[stay.RoomID]
		if !ok {
			newest[stay.RoomID] = stay
			continue
		}
		if stay.CheckInDate.After(current.CheckInDate) ||
			(stay.CheckInDate.Equal(current.CheckInDate) && stay.ID > current.ID) {
			newest[stay.RoomID] = stay
		}
	}
	return newest
}

// GetRoomStatus trạng thái của một phòng tại một ngày
func (s *RoomStatusService) GetRoomStatus(roomID uint, date time.Time) (int, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy phòng", appErrors.ErrRoomNotFound)
		}
		return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm phòng", err)
	}

	var stays []models.Stay
	if err := s.db.Where("room_id = ? AND active = ?", roomID, true).Find(&stays).Error; err != nil {
		return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}

	return ResolveRoomStatus(&room, newestStayByRoom(stays)[roomID], date), nil
}

// RoomBoard bảng phòng cho lễ tân, gom theo loại phòng
func (s *RoomStatusService) RoomBoard(date time.Time, statusFilter *int, search string) ([]dto.RoomBoardGroup, error) {
	var rooms []models.Room
	if err := s.db.Preload("Category").Order("category_id, id").Find(&rooms).Error; err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm phòng", err)
	}

	var stays []models.Stay
	err := s.db.Preload("NightCharges", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date DESC")
	}).
		Preload("NightCharges.Guests.Guest").
		Where("active = ?", true).
		Find(&stays).Error
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}

	newest := newestStayByRoom(stays)
	normalizedSearch := normalizeInput(search)

	groups := make(map[uint]*dto.RoomBoardGroup)
	var order []uint

	for i := range rooms {
		room := &rooms[i]
		stay := newest[room.ID]
		status := ResolveRoomStatus(room, stay, date)

		if statusFilter != nil && status != *statusFilter {
			continue
		}

		item := dto.RoomBoardItem{
			ID:          room.ID,
			Description: room.Description,
			Capacity:    room.Capacity,
			DoubleBeds:  room.DoubleBeds,
			SingleBeds:  room.SingleBeds,
			BunkBeds:    room.BunkBeds,
			Hammocks:    room.Hammocks,
			Status:      status,
		}

		if stay != nil {
			item.StayID = &stay.ID
			if holder := CurrentRepresentative(stay, date); holder != nil {
				item.HolderName = holder.Name
				item.HolderCPF = holder.CPF
			}
		}

		if normalizedSearch != "" && !matchBoardItem(normalizedSearch, &item) {
			continue
		}

		group, ok := groups[room.CategoryID]
		if !ok {
			group = &dto.RoomBoardGroup{
				CategoryID:   room.CategoryID,
				CategoryName: room.Category.Name,
			}
			groups[room.CategoryID] = group
			order = append(order, room.CategoryID)
		}
		group.Rooms = append(group.Rooms, item)
	}

	result := make([]dto.RoomBoardGroup, 0, len(order))
	for _, id := range order {
		result = append(result, *groups[id])
	}
	return result, nil
}

// matchBoardItem khớp tên hoặc CPF của người đại diện với từ khóa
func matchBoardItem(query string, item *dto.RoomBoardItem) bool {
	if strings.Contains(item.HolderCPF, query) {
		return true
	}
	name := normalizeInput(item.HolderName)
	if strings.Contains(name, query) {
		return true
	}
	return calculateSimilarity(query, name) > 0.7
}

// ListStatuses danh sách trạng thái phòng cho dropdown
func ListStatuses() []dto.RoomStatusItem {
	return []dto.RoomStatusItem{
		{Value: constants.RoomStatusOccupied, Description: "Ocupado"},
		{Value: constants.RoomStatusAvailable, Description: "Disponível"},
		{Value: constants.RoomStatusReserved, Description: "Reservado"},
		{Value: constants.RoomStatusCleaning, Description: "Limpeza"},
		{Value: constants.RoomStatusNightClosed, Description: "Pernoite encerrado"},
		{Value: constants.RoomStatusMaintenance, Description: "Manutenção"},
	}
}
