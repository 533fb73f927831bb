package services

import (
	"testing"
	"time"

	"pousada/dto"
	"pousada/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("không thể mở db test: %v", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.CategoryRate{},
		&models.Room{},
		&models.Guest{},
		&models.Company{},
		&models.Stay{},
		&models.NightCharge{},
		&models.NightChargeGuest{},
		&models.NightChargePayment{},
		&models.PaymentType{},
		&models.Report{},
	)
	if err != nil {
		t.Fatalf("không thể migrate db test: %v", err)
	}

	return db
}

type fixture struct {
	db       *gorm.DB
	category models.Category
	room     models.Room
	guests   []models.Guest
}

func setupFixture(t *testing.T, rate float64) *fixture {
	t.Helper()
	db := setupTestDB(t)

	category := models.Category{Name: "Standard"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	if rate > 0 {
		for count := 1; count <= 4; count++ {
			r := models.CategoryRate{CategoryID: category.ID, GuestCount: count, Rate: rate}
			if err := db.Create(&r).Error; err != nil {
				t.Fatalf("seed rate: %v", err)
			}
		}
	}

	room := models.Room{Description: "101", CategoryID: category.ID, Capacity: 4}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}

	guests := []models.Guest{
		{Name: "João Silva", CPF: "11122233344"},
		{Name: "Maria Souza", CPF: "55566677788"},
	}
	for i := range guests {
		if err := db.Create(&guests[i]).Error; err != nil {
			t.Fatalf("seed guest: %v", err)
		}
	}

	paymentType := models.PaymentType{Description: "Dinheiro"}
	if err := db.Create(&paymentType).Error; err != nil {
		t.Fatalf("seed payment type: %v", err)
	}

	return &fixture{db: db, category: category, room: room, guests: guests}
}

func today() string {
	return time.Now().Format(dto.DateLayout)
}

func daysFromToday(n int) string {
	return time.Now().AddDate(0, 0, n).Format(dto.DateLayout)
}
