package services

import (
	"testing"
	"time"

	"pousada/dto"
	"pousada/models"
)

func TestListByStatusDefaultCoversToday(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	current, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	// Pernoite cũ không bao phủ hôm nay, chèn trực tiếp
	past := models.Stay{
		RoomID:       fx.room.ID,
		CheckInDate:  truncateDay(time.Now()).AddDate(0, 0, -10),
		CheckOutDate: truncateDay(time.Now()).AddDate(0, 0, -8),
		Status:       models.StayStatusActive,
		Active:       true,
	}
	if err := fx.db.Create(&past).Error; err != nil {
		t.Fatalf("seed pernoite cũ: %v", err)
	}

	stays, err := svc.ListByStatus(nil)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(stays) != 1 || stays[0].ID != current.ID {
		t.Errorf("danh sách mặc định = %d pernoite, muốn chỉ pernoite hôm nay", len(stays))
	}
}

func TestListByStatusFilter(t *testing.T) {
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

	active := models.StayStatusActive
	stays, err := svc.ListByStatus(&active)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(stays) != 1 || stays[0].ID != stay.ID {
		t.Errorf("lọc theo active = %d pernoite, muốn 1", len(stays))
	}

	cancelled := models.StayStatusCancelled
	stays, err = svc.ListByStatus(&cancelled)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(stays) != 0 {
		t.Errorf("lọc theo cancelled = %d pernoite, muốn 0", len(stays))
	}
}

func TestListByStatusExcludesCancelled(t *testing.T) {
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
	if _, err := svc.CancelStay(stay.ID, "teste"); err != nil {
		t.Fatalf("CancelStay: %v", err)
	}

	stays, err := svc.ListByStatus(nil)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(stays) != 0 {
		t.Errorf("pernoite hủy vẫn xuất hiện trong danh sách mặc định")
	}
}

func TestCurrentRepresentativeFallsBackToNewestCharge(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	created, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[1].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	stay, err := svc.GetStay(created.ID)
	if err != nil {
		t.Fatalf("GetStay: %v", err)
	}

	// Hôm nay nằm trong đêm đầu tiên
	holder := CurrentRepresentative(stay, time.Now())
	if holder == nil || holder.Name != "Maria Souza" {
		t.Errorf("holder = %+v, muốn Maria Souza", holder)
	}

	// Ngày ngoài mọi đêm thì lấy đêm mới nhất
	holder = CurrentRepresentative(stay, time.Now().AddDate(0, 0, 30))
	if holder == nil || holder.Name != "Maria Souza" {
		t.Errorf("fallback holder = %+v, muốn Maria Souza", holder)
	}
}

func TestCurrentRepresentativeOnCheckoutMorning(t *testing.T) {
	// Đêm cuối kết thúc hôm nay; sáng trả phòng vẫn phải hiện người
	// đại diện của đêm đó, không rơi về đêm mới chưa có người đại diện
	stay := &models.Stay{NightCharges: []models.NightCharge{
		{
			StartDate: day(-1),
			EndDate:   day(0),
			Guests: []models.NightChargeGuest{
				{Representative: true, Guest: models.Guest{Name: "João Silva"}},
			},
		},
		{StartDate: day(0), EndDate: day(1)},
	}}

	holder := CurrentRepresentative(stay, time.Now())
	if holder == nil || holder.Name != "João Silva" {
		t.Errorf("holder = %+v, muốn người đại diện của đêm vừa kết thúc", holder)
	}
}

func TestCloseExpiredNights(t *testing.T) {
	fx := setupFixture(t, 100.00)
	svc := NewStayService(StayServiceOptions{DB: fx.db})

	expired := models.Stay{
		RoomID:       fx.room.ID,
		CheckInDate:  truncateDay(time.Now()).AddDate(0, 0, -3),
		CheckOutDate: truncateDay(time.Now()).AddDate(0, 0, -1),
		Status:       models.StayStatusActive,
		Active:       true,
	}
	if err := fx.db.Create(&expired).Error; err != nil {
		t.Fatalf("seed pernoite hết hạn: %v", err)
	}

	current, err := svc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	closed, err := svc.CloseExpiredNights()
	if err != nil {
		t.Fatalf("CloseExpiredNights: %v", err)
	}
	if closed != 1 {
		t.Errorf("đóng %d pernoite, muốn 1", closed)
	}

	var reloaded models.Stay
	fx.db.First(&reloaded, expired.ID)
	if reloaded.Status != models.StayStatusNightClosed {
		t.Errorf("status = %d, muốn đã đóng đêm", reloaded.Status)
	}

	fx.db.First(&reloaded, current.ID)
	if reloaded.Status != models.StayStatusActive {
		t.Errorf("pernoite hiện tại bị đóng nhầm, status = %d", reloaded.Status)
	}
}
