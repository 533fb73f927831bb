package services

import (
	"errors"

	appErrors "pousada/errors"
	"pousada/models"
	"pousada/services/logger"

	"gorm.io/gorm"
)

type PriceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// PriceService tra cứu giá mỗi đêm theo loại phòng và số lượng khách
type PriceService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewPriceService(opts PriceServiceOptions) *PriceService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PriceService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// RateFor trả về giá cho (loại phòng, số khách). Không có quy tắc thì trả về
// 0 và found=false, chỉ ghi log cảnh báo chứ không chặn việc tạo đêm.
func (s *PriceService) RateFor(categoryID uint, guestCount int) (float64, bool, error) {
	if guestCount < 1 {
		guestCount = 1
	}

	var rate models.CategoryRate
	err := s.db.Where("category_id = ? AND guest_count = ?", categoryID, guestCount).
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Warn("[%s] không có giá cho loại phòng %d với %d khách",
			appErrors.ErrCodePricingGap, categoryID, guestCount)
		return 0, false, nil
	}
	if err != nil {
		return 0, false, appErrors.NewAppError(appErrors.ErrCodeDBError, "Lỗi khi tra cứu giá", err)
	}

	return rate.Rate, true, nil
}
