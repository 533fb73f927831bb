package services

import (
	"testing"

	"pousada/models"
)

func TestRateForFindsRule(t *testing.T) {
	fx := setupFixture(t, 0)
	svc := NewPriceService(PriceServiceOptions{DB: fx.db})

	rule := models.CategoryRate{CategoryID: fx.category.ID, GuestCount: 2, Rate: 175.50}
	if err := fx.db.Create(&rule).Error; err != nil {
		t.Fatalf("seed rate: %v", err)
	}

	rate, found, err := svc.RateFor(fx.category.ID, 2)
	if err != nil {
		t.Fatalf("RateFor: %v", err)
	}
	if !found {
		t.Fatal("quy tắc giá tồn tại mà không tìm thấy")
	}
	if rate != 175.50 {
		t.Errorf("rate = %.2f, muốn 175.50", rate)
	}
}

func TestRateForMissingRuleIsNotFatal(t *testing.T) {
	fx := setupFixture(t, 0)
	svc := NewPriceService(PriceServiceOptions{DB: fx.db})

	rate, found, err := svc.RateFor(fx.category.ID, 3)
	if err != nil {
		t.Fatalf("thiếu giá không được trả lỗi: %v", err)
	}
	if found {
		t.Error("found = true khi không có quy tắc")
	}
	if rate != 0 {
		t.Errorf("rate = %.2f, muốn 0", rate)
	}
}

func TestRateForZeroGuestsPricesAsOne(t *testing.T) {
	fx := setupFixture(t, 0)
	svc := NewPriceService(PriceServiceOptions{DB: fx.db})

	rule := models.CategoryRate{CategoryID: fx.category.ID, GuestCount: 1, Rate: 90.00}
	if err := fx.db.Create(&rule).Error; err != nil {
		t.Fatalf("seed rate: %v", err)
	}

	rate, found, err := svc.RateFor(fx.category.ID, 0)
	if err != nil {
		t.Fatalf("RateFor: %v", err)
	}
	if !found || rate != 90.00 {
		t.Errorf("rate = %.2f found = %v, muốn giá một khách", rate, found)
	}
}
