package services

import (
	"errors"

	"pousada/dto"
	appErrors "pousada/errors"
	"pousada/models"
	"pousada/services/logger"

	"gorm.io/gorm"
)

type InvoiceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// InvoiceService đối soát tài chính của pernoite
type InvoiceService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewInvoiceService(opts InvoiceServiceOptions) *InvoiceService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InvoiceService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// ReconcileStay tổng đã tính là tổng lưu trên pernoite, tổng đã trả là
// tổng thanh toán trên các diária. Outstanding có thể âm khi trả thừa.
func (s *InvoiceService) ReconcileStay(stayID uint) (*dto.StayBalanceResponse, error) {
	var stay models.Stay
	if err := s.db.First(&stay, stayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewAppError(appErrors.ErrCodeDBNotFound, "Không tìm thấy pernoite", appErrors.ErrStayNotFound)
		}
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tìm pernoite", err)
	}

	var paid float64
	err := s.db.Model(&models.NightChargePayment{}).
		Where("night_charge_id IN (?)", s.db.Model(&models.NightCharge{}).
			Select("id").
			Where("stay_id = ?", stayID)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tính tổng thanh toán", err)
	}

	charged := stay.TotalAmount
	percentPaid := 0.0
	if charged > 0 {
		percentPaid = paid / charged * 100
	}

	return &dto.StayBalanceResponse{
		StayID:      stay.ID,
		Charged:     charged,
		Paid:        paid,
		Outstanding: charged - paid,
		PercentPaid: percentPaid,
	}, nil
}
