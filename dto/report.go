package dto

type CreateReportRequest struct {
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	PaymentTypeID *uint   `json:"paymentTypeId"`
	RoomID        *uint   `json:"roomId"`
	StayID        *uint   `json:"stayId"`
}

// ReportFilterRequest lọc báo cáo theo kỳ, loại thanh toán, phòng, pernoite
type ReportFilterRequest struct {
	FromDate      string `form:"fromDate"`
	ToDate        string `form:"toDate"`
	PaymentTypeID *uint  `form:"paymentTypeId"`
	RoomID        *uint  `form:"roomId"`
	StayID        *uint  `form:"stayId"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}
