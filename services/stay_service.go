package services

import (
	"errors"
	"sync"
	"time"

	"pousada/constants"
	"pousada/dto"
	appErrors "pousada/errors"
	"pousada/models"
	"pousada/services/logger"
	"pousada/validator"

	"gorm.io/gorm"
)

type StayServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// StayService quản lý vòng đời pernoite và việc sinh diária theo đêm
type StayService struct {
	db    *gorm.DB
	log   logger.Logger
	price *PriceService

	mu    sync.Mutex
	locks map[uint]*stayLock
}

func NewStayService(opts StayServiceOptions) *StayService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &StayService{
		db:    opts.DB,
		log:   opts.Logger,
		price: NewPriceService(PriceServiceOptions{DB: opts.DB, Logger: opts.Logger}),
		locks: make(map[uint]*stayLock),
	}
}

// stayLock mutex riêng của một pernoite, đếm tham chiếu để gỡ khỏi map
// khi không còn ai chờ
type stayLock struct {
	mu   sync.Mutex
	refs int
}

func (s *StayService) lockStay(stayID uint) *stayLock {
	s.mu.Lock()
	l, ok := s.locks[stayID]
	if !ok {
		l = &stayLock{}
		s.locks[stayID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return l
}

func (s *StayService) unlockStay(stayID uint, l *stayLock) {
	l.mu.Unlock()

	s.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, stayID)
	}
	s.mu.Unlock()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateStay tạo pernoite mới và sinh toàn bộ diária trong một transaction
func (s *StayService) CreateStay(req *dto.CreateStayRequest) (*models.Stay, error) {
	checkIn, checkOut, err := validator.ValidateCreateStay(req, time.Now())
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.db.First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy phòng", appErrors.ErrRoomNotFound)
		}
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm phòng", err)
	}

	stay := &models.Stay{
		RoomID:        room.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		Status:        models.StayStatusActive,
		Active:        true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stay).Error; err != nil {
			return appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể tạo pernoite", err)
		}

		total, err := s.generateNights(tx, stay, &room, checkIn, checkOut, req.Guests, req.Payments, 1, nil, time.Time{})
		if err != nil {
			return err
		}

		stay.TotalAmount = total
		if err := tx.Model(stay).Update("total_amount", total).Error; err != nil {
			return appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể cập nhật tổng tiền", err)
		}

		return s.markGuestsLodged(tx, req.Guests)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tạo pernoite %d cho phòng %d, tổng %.2f", stay.ID, room.ID, stay.TotalAmount)
	return stay, nil
}

// ExtendStay thêm các đêm mới trong [checkInDate, checkOutDate) cho pernoite,
// bỏ qua đêm đã tồn tại. Các đêm mới có thể nằm ở phòng khác.
func (s *StayService) ExtendStay(stayID uint, req *dto.ExtendStayRequest) (*models.Stay, error) {
	lock := s.lockStay(stayID)
	defer s.unlockStay(stayID, lock)

	newCheckIn, err := time.Parse(dto.DateLayout, req.CheckInDate)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeInvalidFormat, "Ngày bắt đầu gia hạn không hợp lệ", err)
	}
	newCheckOut, err := time.Parse(dto.DateLayout, req.CheckOutDate)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}
	if !newCheckOut.After(newCheckIn) {
		return nil, appErrors.NewAppError(appErrors.ErrCodeValidation, "Ngày trả phòng phải sau ngày bắt đầu gia hạn", appErrors.ErrCheckOutBeforeStart)
	}

	if err := validator.ValidateStayGuests(req.Guests); err != nil {
		return nil, err
	}
	if err := validator.ValidateStayPayments(req.Payments); err != nil {
		return nil, err
	}

	var stay models.Stay
	if err := s.db.First(&stay, stayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy pernoite", appErrors.ErrStayNotFound)
		}
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}

	if !stay.Active {
		return nil, appErrors.NewAppError(appErrors.ErrCodeValidation, "Pernoite không còn hoạt động", appErrors.ErrStayNotActive)
	}

	// Không chỉ định phòng thì các đêm mới ở lại phòng hiện tại
	roomID := stay.RoomID
	if req.RoomID != 0 {
		roomID = req.RoomID
	}

	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy phòng", appErrors.ErrRoomNotFound)
		}
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm phòng", err)
	}

	// Phòng đang bị giữ bởi trạng thái thủ công thì không thể nhận đêm mới
	switch room.Status {
	case constants.RoomStatusOccupied, constants.RoomStatusReserved, constants.RoomStatusNightClosed:
		return nil, appErrors.NewAppError(appErrors.ErrCodeConflict, "Phòng không khả dụng để gia hạn", appErrors.ErrRoomNotAvailable)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.NightCharge
		if err := tx.Where("stay_id = ?", stay.ID).Find(&existing).Error; err != nil {
			return appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm diária", err)
		}

		maxSeq := 0
		var latestEnd time.Time
		existingStarts := make(map[time.Time]bool, len(existing))
		for _, charge := range existing {
			if charge.Sequence > maxSeq {
				maxSeq = charge.Sequence
			}
			end := truncateDay(charge.EndDate)
			if end.After(latestEnd) {
				latestEnd = end
			}
			existingStarts[truncateDay(charge.StartDate)] = true
		}

		added, err := s.generateNights(tx, &stay, &room, truncateDay(newCheckIn), truncateDay(newCheckOut),
			req.Guests, req.Payments, maxSeq+1, existingStarts, latestEnd)
		if err != nil {
			return err
		}

		stay.TotalAmount += added
		stay.CheckOutDate = truncateDay(newCheckOut)

		updates := map[string]interface{}{
			"total_amount":   stay.TotalAmount,
			"check_out_date": stay.CheckOutDate,
		}
		if err := tx.Model(&stay).Updates(updates).Error; err != nil {
			return appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể cập nhật pernoite", err)
		}

		return s.markGuestsLodged(tx, req.Guests)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("gia hạn pernoite %d từ %s đến %s ở phòng %d, tổng %.2f",
		stay.ID, req.CheckInDate, req.CheckOutDate, room.ID, stay.TotalAmount)
	return &stay, nil
}

// generateNights sinh một diária cho mỗi ngày trong [start, endExclusive).
// Giá được tra cứu một lần cho cả đợt. Ngày đã có diária hoặc nằm trước
// latestEnd thì bị bỏ qua. Trả về tổng tiền các đêm mới.
func (s *StayService) generateNights(
	tx *gorm.DB,
	stay *models.Stay,
	room *models.Room,
	start, endExclusive time.Time,
	guests []dto.StayGuestInput,
	payments []dto.StayPaymentInput,
	startSeq int,
	existingStarts map[time.Time]bool,
	latestEnd time.Time,
) (float64, error) {
	guestCount := len(guests)
	if guestCount == 0 {
		guestCount = 1
	}

	rate, _, err := s.price.RateFor(room.CategoryID, guestCount)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	seq := startSeq
	var total float64

	for day := start; day.Before(endExclusive); day = day.AddDate(0, 0, 1) {
		if existingStarts != nil && existingStarts[day] {
			continue
		}
		if !latestEnd.IsZero() && day.Before(latestEnd) {
			continue
		}

		charge := models.NightCharge{
			StayID:     stay.ID,
			RoomID:     room.ID,
			StartDate:  day,
			EndDate:    day.AddDate(0, 0, 1),
			Rate:       rate,
			Total:      rate,
			GuestCount: guestCount,
			Sequence:   seq,
		}
		if err := tx.Create(&charge).Error; err != nil {
			return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể tạo diária", err)
		}

		representatives := 0
		for _, g := range guests {
			if g.Representative {
				representatives++
			}
			if representatives > 1 {
				return 0, appErrors.NewAppError(appErrors.ErrCodeValidation,
					"Mỗi đêm chỉ được có một người đại diện", appErrors.ErrDuplicateHolder)
			}
			link := models.NightChargeGuest{
				NightChargeID:  charge.ID,
				GuestID:        g.GuestID,
				Representative: g.Representative,
			}
			if err := tx.Create(&link).Error; err != nil {
				return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể liên kết khách", err)
			}
		}

		for _, p := range payments {
			payment := models.NightChargePayment{
				NightChargeID: charge.ID,
				Amount:        p.Amount,
				PaidAt:        now,
				PaymentTypeID: p.PaymentTypeID,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể lưu thanh toán", err)
			}
		}

		total += rate
		seq++
	}

	return total, nil
}

// markGuestsLodged đánh dấu khách đang lưu trú và tăng bộ đếm
func (s *StayService) markGuestsLodged(tx *gorm.DB, guests []dto.StayGuestInput) error {
	for _, g := range guests {
		res := tx.Model(&models.Guest{}).
			Where("id = ? AND lodged = ?", g.GuestID, false).
			Updates(map[string]interface{}{
				"lodged":     true,
				"stay_count": gorm.Expr("stay_count + 1"),
			})
		if res.Error != nil {
			return appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể cập nhật khách", res.Error)
		}
	}
	return nil
}

// CancelStay hủy pernoite, giữ nguyên diária và thanh toán đã có
func (s *StayService) CancelStay(stayID uint, reason string) (*models.Stay, error) {
	var stay models.Stay
	if err := s.db.First(&stay, stayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy pernoite", appErrors.ErrStayNotFound)
		}
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}

	state := models.GetStayState(stay.Status)
	if err := state.Cancel(&stay); err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeValidation, "Không thể hủy pernoite", err)
	}
	stay.CancelReason = reason

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&stay).Updates(map[string]interface{}{
			"status":        stay.Status,
			"active":        stay.Active,
			"cancel_reason": stay.CancelReason,
		}).Error; err != nil {
			return appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể hủy pernoite", err)
		}
		return s.clearLodgedGuests(tx, stay.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("hủy pernoite %d: %s", stay.ID, reason)
	return &stay, nil
}

// clearLodgedGuests bỏ cờ lưu trú của các khách thuộc pernoite
func (s *StayService) clearLodgedGuests(tx *gorm.DB, stayID uint) error {
	err := tx.Model(&models.Guest{}).
		Where("id IN (?)", tx.Model(&models.NightChargeGuest{}).
			Select("guest_id").
			Where("night_charge_id IN (?)", tx.Model(&models.NightCharge{}).
				Select("id").
				Where("stay_id = ?", stayID))).
		Update("lodged", false).Error
	if err != nil {
		return appErrors.NewAppError(appErrors.ErrCodeDBError, "Không thể cập nhật khách", err)
	}
	return nil
}

// GetStay trả về pernoite kèm toàn bộ diária
func (s *StayService) GetStay(stayID uint) (*models.Stay, error) {
	var stay models.Stay
	err := s.db.Preload("Room").
		Preload("NightCharges", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Preload("NightCharges.Guests.Guest").
		Preload("NightCharges.Payments").
		First(&stay, stayID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy pernoite", appErrors.ErrStayNotFound)
	}
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}
	return &stay, nil
}

// ListByStatus không có filter thì trả về pernoite đang bao phủ hôm nay
func (s *StayService) ListByStatus(status *int) ([]models.Stay, error) {
	query := s.db.Preload("Room").
		Preload("NightCharges", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date DESC")
		}).
		Preload("NightCharges.Guests.Guest").
		Where("active = ?", true)

	if status != nil {
		query = query.Where("status = ?", *status)
	} else {
		today := truncateDay(time.Now())
		query = query.Where("check_in_date <= ? AND check_out_date >= ?", today, today)
	}

	var stays []models.Stay
	if err := query.Order("check_in_date DESC").Find(&stays).Error; err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}
	return stays, nil
}

// CurrentRepresentative tìm người đại diện của đêm bao phủ hôm nay,
// không có thì lấy đêm mới nhất. Ngày kết thúc của đêm vẫn được tính
// là bao phủ, nên sáng trả phòng vẫn hiện người đại diện của đêm cuối.
func CurrentRepresentative(stay *models.Stay, today time.Time) *models.Guest {
	day := truncateDay(today)
	var fallback *models.NightCharge

	for i := range stay.NightCharges {
		charge := &stay.NightCharges[i]
		if fallback == nil || charge.StartDate.After(fallback.StartDate) {
			fallback = charge
		}
		if !day.Before(truncateDay(charge.StartDate)) && !day.After(truncateDay(charge.EndDate)) {
			if g := representativeOf(charge); g != nil {
				return g
			}
		}
	}

	if fallback != nil {
		return representativeOf(fallback)
	}
	return nil
}

func representativeOf(charge *models.NightCharge) *models.Guest {
	for i := range charge.Guests {
		if charge.Guests[i].Representative {
			return &charge.Guests[i].Guest
		}
	}
	return nil
}

// CloseExpiredNights chuyển pernoite hết hạn sang trạng thái đóng đêm.
// Chạy bởi cron 0h hằng ngày. Trả về số pernoite đã đóng.
func (s *StayService) CloseExpiredNights() (int, error) {
	today := truncateDay(time.Now())

	var stays []models.Stay
	if err := s.db.Where("active = ? AND status = ? AND check_out_date < ?",
		true, models.StayStatusActive, today).Find(&stays).Error; err != nil {
		return 0, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite hết hạn", err)
	}

	closed := 0
	for i := range stays {
		stay := &stays[i]
		state := models.GetStayState(stay.Status)
		if err := state.CloseNight(stay); err != nil {
			continue
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(stay).Update("status", stay.Status).Error; err != nil {
				return err
			}
			return s.clearLodgedGuests(tx, stay.ID)
		})
		if err != nil {
			s.log.Error("không thể đóng đêm pernoite %d: %v", stay.ID, err)
			continue
		}
		closed++
	}

	return closed, nil
}
