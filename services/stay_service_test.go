package services

import (
	"testing"
	"time"

	"pousada/constants"
	"pousada/dto"
	appErrors "pousada/errors"
	"pousada/models"
)

func TestCreateStayGeneratesNightCharges(t *testing.T) {
	fx := setupFixture(t, 150.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests: []dto.StayGuestInput{
			{GuestID: fx.guests[0].ID, Representative: true},
			{GuestID: fx.guests[1].ID},
		},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	if stay.TotalAmount != 300.00 {
		t.Errorf("tổng tiền = %.2f, muốn 300.00", stay.TotalAmount)
	}

	var charges []models.NightCharge
	if err := fx.db.Where("stay_id = ?", stay.ID).Order("sequence").Find(&charges).Error; err != nil {
		t.Fatalf("tìm diária: %v", err)
	}

	if len(charges) != 2 {
		t.Fatalf("số diária = %d, muốn 2", len(charges))
	}

	for i, charge := range charges {
		if charge.Sequence != i+1 {
			t.Errorf("sequence = %d, muốn %d", charge.Sequence, i+1)
		}
		if charge.Rate != 150.00 {
			t.Errorf("giá đêm = %.2f, muốn 150.00", charge.Rate)
		}
		if !charge.EndDate.Equal(charge.StartDate.AddDate(0, 0, 1)) {
			t.Errorf("đêm %d không kéo dài đúng một ngày", charge.Sequence)
		}
		if charge.GuestCount != 2 {
			t.Errorf("số khách = %d, muốn 2", charge.GuestCount)
		}
	}

	if !charges[1].StartDate.Equal(charges[0].StartDate.AddDate(0, 0, 1)) {
		t.Error("hai đêm không liền kề nhau")
	}
}

func TestCreateStayRejectsCheckInNotToday(t *testing.T) {
	fx := setupFixture(t, 150.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	_, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  daysFromToday(1),
		CheckOutDate: daysFromToday(3),
	})
	if err == nil {
		t.Fatal("muốn lỗi validation khi check-in không phải hôm nay")
	}

	appErr := appErrors.GetAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrCodeValidation {
		t.Errorf("mã lỗi = %v, muốn VALIDATION_ERROR", err)
	}
}

func TestCreateStayRejectsCheckOutNotAfterCheckIn(t *testing.T) {
	fx := setupFixture(t, 150.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	_, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: today(),
	})
	if err == nil {
		t.Fatal("muốn lỗi validation khi check-out không sau check-in")
	}
}

func TestCreateStayDuplicateRepresentativeAbortsAll(t *testing.T) {
	fx := setupFixture(t, 150.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	_, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests: []dto.StayGuestInput{
			{GuestID: fx.guests[0].ID, Representative: true},
			{GuestID: fx.guests[1].ID, Representative: true},
		},
	})
	if err == nil {
		t.Fatal("muốn lỗi validation khi có hai người đại diện")
	}

	var stayCount, chargeCount int64
	fx.db.Model(&models.Stay{}).Count(&stayCount)
	fx.db.Model(&models.NightCharge{}).Count(&chargeCount)
	if stayCount != 0 || chargeCount != 0 {
		t.Errorf("stays=%d charges=%d sau khi lỗi, muốn 0/0", stayCount, chargeCount)
	}
}

func TestCreateStayMissingRateProducesZeroCharges(t *testing.T) {
	fx := setupFixture(t, 0)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay không được chặn khi thiếu giá: %v", err)
	}

	if stay.TotalAmount != 0 {
		t.Errorf("tổng tiền = %.2f, muốn 0 khi thiếu giá", stay.TotalAmount)
	}

	var charges []models.NightCharge
	fx.db.Where("stay_id = ?", stay.ID).Find(&charges)
	if len(charges) != 2 {
		t.Fatalf("số diária = %d, muốn 2", len(charges))
	}
	for _, charge := range charges {
		if charge.Rate != 0 {
			t.Errorf("giá đêm = %.2f, muốn 0", charge.Rate)
		}
	}
}

func TestExtendStayAddsOnlyNewNights(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	extended, err := svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(4),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("ExtendStay: %v", err)
	}

	var charges []models.NightCharge
	fx.db.Where("stay_id = ?", stay.ID).Order("sequence").Find(&charges)
	if len(charges) != 4 {
		t.Fatalf("số diária sau gia hạn = %d, muốn 4", len(charges))
	}

	for i, charge := range charges {
		if charge.Sequence != i+1 {
			t.Errorf("sequence = %d, muốn %d", charge.Sequence, i+1)
		}
	}

	if extended.TotalAmount != 400.00 {
		t.Errorf("tổng tiền sau gia hạn = %.2f, muốn 400.00", extended.TotalAmount)
	}
}

func TestExtendStayIsIdempotent(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(3),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	req := &dto.ExtendStayRequest{
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(3),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	}

	first, err := svc.ExtendStay(stay.ID, req)
	if err != nil {
		t.Fatalf("ExtendStay lần 1: %v", err)
	}
	second, err := svc.ExtendStay(stay.ID, req)
	if err != nil {
		t.Fatalf("ExtendStay lần 2: %v", err)
	}

	var chargeCount int64
	fx.db.Model(&models.NightCharge{}).Where("stay_id = ?", stay.ID).Count(&chargeCount)
	if chargeCount != 3 {
		t.Errorf("số diária = %d, muốn 3 không đổi", chargeCount)
	}
	if first.TotalAmount != 300.00 || second.TotalAmount != 300.00 {
		t.Errorf("tổng tiền %.2f / %.2f, muốn 300.00 không đổi", first.TotalAmount, second.TotalAmount)
	}
}

func TestExtendStayConflictsWhenRoomHeld(t *testing.T) {
	heldStatuses := []int{
		constants.RoomStatusOccupied,
		constants.RoomStatusReserved,
		constants.RoomStatusNightClosed,
	}

	for _, status := range heldStatuses {
		fx := setupFixture(t, 100.00)
		svc := NewStayService(StayServiceOptions{DB: fx.db})

		stay, err := svc.CreateStay(&dto.CreateStayRequest{
			RoomID:       fx.room.ID,
			CheckInDate:  today(),
			CheckOutDate: daysFromToday(2),
			Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
		})
		if err != nil {
			t.Fatalf("CreateStay: %v", err)
		}

		if err := fx.db.Model(&models.Room{}).Where("id = ?", fx.room.ID).
			Update("status", status).Error; err != nil {
			t.Fatalf("cập nhật trạng thái phòng: %v", err)
		}

		_, err = svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
			CheckInDate:  daysFromToday(2),
			CheckOutDate: daysFromToday(4),
		})
		if err == nil {
			t.Fatalf("muốn lỗi conflict khi phòng có trạng thái %d", status)
		}
		appErr := appErrors.GetAppError(err)
		if appErr == nil || appErr.Code != appErrors.ErrCodeConflict {
			t.Errorf("mã lỗi = %v, muốn CONFLICT", err)
		}
	}
}

func TestExtendStayCleaningStatusAllowed(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	if err := fx.db.Model(&models.Room{}).Where("id = ?", fx.room.ID).
		Update("status", constants.RoomStatusCleaning).Error; err != nil {
		t.Fatalf("cập nhật trạng thái phòng: %v", err)
	}

	if _, err := svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  daysFromToday(2),
		CheckOutDate: daysFromToday(3),
	}); err != nil {
		t.Errorf("gia hạn khi phòng đang dọn phải được phép: %v", err)
	}
}

func TestExtendStayGapStartsAtRequestedDate(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	// Gia hạn cách quãng: đêm mới chỉ bắt đầu từ ngày được yêu cầu
	extended, err := svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  daysFromToday(3),
		CheckOutDate: daysFromToday(5),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("ExtendStay: %v", err)
	}

	var charges []models.NightCharge
	fx.db.Where("stay_id = ?", stay.ID).Order("sequence").Find(&charges)
	if len(charges) != 4 {
		t.Fatalf("số diária = %d, muốn 4", len(charges))
	}

	gapDay := truncateDay(time.Now()).AddDate(0, 0, 2)
	for _, charge := range charges {
		if truncateDay(charge.StartDate).Equal(gapDay) {
			t.Error("ngày cách quãng không được sinh diária")
		}
	}
	if !truncateDay(charges[2].StartDate).Equal(gapDay.AddDate(0, 0, 1)) {
		t.Errorf("đêm mới bắt đầu %v, muốn từ ngày được yêu cầu", charges[2].StartDate)
	}
	if extended.TotalAmount != 400.00 {
		t.Errorf("tổng tiền = %.2f, muốn 400.00", extended.TotalAmount)
	}
}

func TestExtendStayToDifferentRoom(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	room2 := models.Room{Description: "102", CategoryID: fx.category.ID, Capacity: 4}
	if err := fx.db.Create(&room2).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	// Phòng cũ bị giữ cũng không cản gia hạn sang phòng khác
	if err := fx.db.Model(&models.Room{}).Where("id = ?", fx.room.ID).
		Update("status", constants.RoomStatusOccupied).Error; err != nil {
		t.Fatalf("cập nhật trạng thái phòng: %v", err)
	}

	_, err = svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  daysFromToday(2),
		CheckOutDate: daysFromToday(3),
		RoomID:       room2.ID,
	})
	if err != nil {
		t.Fatalf("ExtendStay sang phòng khác: %v", err)
	}

	var charges []models.NightCharge
	fx.db.Where("stay_id = ?", stay.ID).Order("sequence").Find(&charges)
	if len(charges) != 3 {
		t.Fatalf("số diária = %d, muốn 3", len(charges))
	}
	if charges[2].RoomID != room2.ID {
		t.Errorf("đêm mới ở phòng %d, muốn phòng %d", charges[2].RoomID, room2.ID)
	}

	var reloaded models.Stay
	fx.db.First(&reloaded, stay.ID)
	if reloaded.RoomID != fx.room.ID {
		t.Errorf("phòng gốc của pernoite bị đổi thành %d", reloaded.RoomID)
	}

	// Phòng đích bị giữ thì vẫn là conflict
	if err := fx.db.Model(&models.Room{}).Where("id = ?", room2.ID).
		Update("status", constants.RoomStatusReserved).Error; err != nil {
		t.Fatalf("cập nhật trạng thái phòng: %v", err)
	}
	_, err = svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  daysFromToday(3),
		CheckOutDate: daysFromToday(4),
		RoomID:       room2.ID,
	})
	appErr := appErrors.GetAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrCodeConflict {
		t.Errorf("mã lỗi = %v, muốn CONFLICT trên phòng đích", err)
	}
}

func TestExtendStaySetsEndDateFromRequest(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(3),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	// Ngày trả phòng mới được ghi thẳng, kể cả khi sớm hơn ngày cũ
	extended, err := svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
	})
	if err != nil {
		t.Fatalf("ExtendStay: %v", err)
	}

	wantEnd := truncateDay(time.Now()).AddDate(0, 0, 2)
	if !truncateDay(extended.CheckOutDate).Equal(wantEnd) {
		t.Errorf("ngày trả phòng = %v, muốn %v", extended.CheckOutDate, wantEnd)
	}

	var chargeCount int64
	fx.db.Model(&models.NightCharge{}).Where("stay_id = ?", stay.ID).Count(&chargeCount)
	if chargeCount != 3 {
		t.Errorf("số diária = %d, diária đã sinh phải giữ nguyên", chargeCount)
	}
}

func TestExtendStayDuplicateRepresentativeRollsBack(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	_, err = svc.ExtendStay(stay.ID, &dto.ExtendStayRequest{
		CheckInDate:  daysFromToday(2),
		CheckOutDate: daysFromToday(4),
		Guests: []dto.StayGuestInput{
			{GuestID: fx.guests[0].ID, Representative: true},
			{GuestID: fx.guests[1].ID, Representative: true},
		},
	})
	if err == nil {
		t.Fatal("muốn lỗi validation khi gia hạn với hai người đại diện")
	}

	var chargeCount int64
	fx.db.Model(&models.NightCharge{}).Where("stay_id = ?", stay.ID).Count(&chargeCount)
	if chargeCount != 2 {
		t.Errorf("số diária = %d sau khi lỗi, muốn 2 không đổi", chargeCount)
	}

	var reloaded models.Stay
	fx.db.First(&reloaded, stay.ID)
	if reloaded.TotalAmount != 200.00 {
		t.Errorf("tổng tiền = %.2f sau khi lỗi, muốn 200.00 không đổi", reloaded.TotalAmount)
	}
}

func TestStayLockEvictedAfterUse(t *testing.T) {
	svc := NewStayService(StayServiceOptions{})

	l := svc.lockStay(42)
	svc.unlockStay(42, l)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.locks) != 0 {
		t.Errorf("map lock còn %d mục sau khi dùng xong, muốn 0", len(svc.locks))
	}
}

func TestCancelStayKeepsCharges(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
		Payments:     []dto.StayPaymentInput{{Amount: 50.00, PaymentTypeID: 1}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	cancelled, err := svc.CancelStay(stay.ID, "hóspede desistiu")
	if err != nil {
		t.Fatalf("CancelStay: %v", err)
	}

	if cancelled.Active {
		t.Error("pernoite hủy vẫn còn active")
	}
	if cancelled.Status != models.StayStatusCancelled {
		t.Errorf("status = %d, muốn %d", cancelled.Status, models.StayStatusCancelled)
	}
	if cancelled.CancelReason != "hóspede desistiu" {
		t.Errorf("lý do hủy = %q chưa được lưu", cancelled.CancelReason)
	}

	var chargeCount, paymentCount int64
	fx.db.Model(&models.NightCharge{}).Where("stay_id = ?", stay.ID).Count(&chargeCount)
	fx.db.Model(&models.NightChargePayment{}).Count(&paymentCount)
	if chargeCount != 2 {
		t.Errorf("số diária sau hủy = %d, muốn 2", chargeCount)
	}
	if paymentCount != 2 {
		t.Errorf("số thanh toán sau hủy = %d, muốn 2", paymentCount)
	}
}

func TestCancelStayTwiceFails(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	if _, err := svc.CancelStay(stay.ID, "erro de lançamento"); err != nil {
		t.Fatalf("CancelStay: %v", err)
	}
	if _, err := svc.CancelStay(stay.ID, "de novo"); err == nil {
		t.Error("hủy lần hai phải bị từ chối")
	}
}

func TestCreateStayWithoutGuestsPricesAsOne(t *testing.T) {
	fx := setupFixture(t, 0)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	rate := models.CategoryRate{CategoryID: fx.category.ID, GuestCount: 1, Rate: 80.00}
	if err := fx.db.Create(&rate).Error; err != nil {
		t.Fatalf("seed rate: %v", err)
	}

	stay, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(1),
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	if stay.TotalAmount != 80.00 {
		t.Errorf("tổng tiền = %.2f, muốn 80.00 với giá một khách", stay.TotalAmount)
	}
}

func TestCreateStayMarksGuestsLodged(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	_, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	var guest models.Guest
	if err := fx.db.First(&guest, fx.guests[0].ID).Error; err != nil {
		t.Fatalf("tìm khách: %v", err)
	}
	if !guest.Lodged {
		t.Error("khách chưa được đánh dấu đang lưu trú")
	}
	if guest.StayCount != 1 {
		t.Errorf("số lần lưu trú = %d, muốn 1", guest.StayCount)
	}
}
