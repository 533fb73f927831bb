package services

import (
	"testing"

	"pousada/dto"
	appErrors "pousada/errors"
)

func TestReconcileStayPartiallyPaid(t *testing.T) {
	fx := setupFixture(t, 150.00)
	staySvc := NewStayService(StayServiceOptions{DB: fx.db})
	invoiceSvc := NewInvoiceService(InvoiceServiceOptions{DB: fx.db})

	stay, err := staySvc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(2),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
		Payments:     []dto.StayPaymentInput{{Amount: 50.00, PaymentTypeID: 1}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	balance, err := invoiceSvc.ReconcileStay(stay.ID)
	if err != nil {
		t.Fatalf("ReconcileStay: %v", err)
	}

	// 2 đêm x 150, thanh toán 50 kèm mỗi đêm
	if balance.Charged != 300.00 {
		t.Errorf("charged = %.2f, muốn 300.00", balance.Charged)
	}
	if balance.Paid != 100.00 {
		t.Errorf("paid = %.2f, muốn 100.00", balance.Paid)
	}
	if balance.Outstanding != 200.00 {
		t.Errorf("outstanding = %.2f, muốn 200.00", balance.Outstanding)
	}
	wantPercent := 100.00 / 300.00 * 100
	if diff := balance.PercentPaid - wantPercent; diff > 0.001 || diff < -0.001 {
		t.Errorf("percentPaid = %.4f, muốn %.4f", balance.PercentPaid, wantPercent)
	}
}

func TestReconcileStayOverpaidGoesNegative(t *testing.T) {
	fx := setupFixture(t, 100.00)
	staySvc := NewStayService(StayServiceOptions{DB: fx.db})
	invoiceSvc := NewInvoiceService(InvoiceServiceOptions{DB: fx.db})

	stay, err := staySvc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(1),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
		Payments:     []dto.StayPaymentInput{{Amount: 250.00, PaymentTypeID: 1}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	balance, err := invoiceSvc.ReconcileStay(stay.ID)
	if err != nil {
		t.Fatalf("ReconcileStay: %v", err)
	}

	// Trả thừa thì outstanding âm, không bị cắt về 0
	if balance.Outstanding != -150.00 {
		t.Errorf("outstanding = %.2f, muốn -150.00", balance.Outstanding)
	}
	if balance.PercentPaid != 250.00 {
		t.Errorf("percentPaid = %.2f, muốn 250.00", balance.PercentPaid)
	}
}

func TestReconcileStayZeroCharged(t *testing.T) {
	fx := setupFixture(t, 0)
	staySvc := NewStayService(StayServiceOptions{DB: fx.db})
	invoiceSvc := NewInvoiceService(InvoiceServiceOptions{DB: fx.db})

	stay, err := staySvc.CreateStay(&dto.CreateStayRequest{
		RoomID:       fx.room.ID,
		CheckInDate:  today(),
		CheckOutDate: daysFromToday(1),
		Guests:       []dto.StayGuestInput{{GuestID: fx.guests[0].ID, Representative: true}},
	})
	if err != nil {
		t.Fatalf("CreateStay: %v", err)
	}

	balance, err := invoiceSvc.ReconcileStay(stay.ID)
	if err != nil {
		t.Fatalf("ReconcileStay: %v", err)
	}

	if balance.Charged != 0 || balance.Paid != 0 || balance.Outstanding != 0 {
		t.Errorf("balance = %+v, muốn toàn 0", balance)
	}
	if balance.PercentPaid != 0 {
		t.Errorf("percentPaid = %.2f, muốn 0 khi chưa tính tiền", balance.PercentPaid)
	}
}

func TestReconcileStayNotFound(t *testing.T) {
	fx := setupFixture(t, 100.00)
	invoiceSvc := NewInvoiceService(InvoiceServiceOptions{DB: fx.db})

	_, err := invoiceSvc.ReconcileStay(9999)
	if err == nil {
		t.Fatal("muốn lỗi not found")
	}
	appErr := appErrors.GetAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrCodeDBNotFound {
		t.Errorf("mã lỗi = %v, muốn DB_NOT_FOUND", err)
	}
}
