package dto

// StayGuestInput khách trong một pernoite, đánh dấu người đại diện
type StayGuestInput struct {
	GuestID        uint `json:"guestId" binding:"required"`
	Representative bool `json:"representative"`
}

// StayPaymentInput thanh toán kèm theo lúc tạo hoặc gia hạn
type StayPaymentInput struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentTypeID uint    `json:"paymentTypeId" binding:"required"`
}

type CreateStayRequest struct {
	RoomID        uint               `json:"roomId" binding:"required"`
	CheckInDate   string             `json:"checkInDate" binding:"required"`
	CheckOutDate  string             `json:"checkOutDate" binding:"required"`
	ArrivalTime   string             `json:"arrivalTime"`
	DepartureTime string             `json:"departureTime"`
	Guests        []StayGuestInput   `json:"guests"`
	Payments      []StayPaymentInput `json:"payments"`
}

// ExtendStayRequest gia hạn pernoite thêm các đêm mới trong khoảng
// [checkInDate, checkOutDate), có thể chuyển sang phòng khác
type ExtendStayRequest struct {
	CheckInDate  string             `json:"checkInDate" binding:"required"`
	CheckOutDate string             `json:"checkOutDate" binding:"required"`
	RoomID       uint               `json:"roomId"`
	Guests       []StayGuestInput   `json:"guests"`
	Payments     []StayPaymentInput `json:"payments"`
}

type CancelStayRequest struct {
	Reason string `json:"reason"`
}

type StayResponse struct {
	ID                 uint    `json:"id"`
	RoomID             uint    `json:"roomId"`
	RoomDescription    string  `json:"roomDescription"`
	CheckInDate        string  `json:"checkInDate"`
	CheckOutDate       string  `json:"checkOutDate"`
	ArrivalTime        string  `json:"arrivalTime,omitempty"`
	DepartureTime      string  `json:"departureTime,omitempty"`
	Status             int     `json:"status"`
	Active             bool    `json:"active"`
	TotalAmount        float64 `json:"totalAmount"`
	RepresentativeName string  `json:"representativeName,omitempty"`
	RepresentativeCPF  string  `json:"representativeCpf,omitempty"`
	NightCount         int     `json:"nightCount"`
}

type NightChargeResponse struct {
	ID         uint    `json:"id"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Rate       float64 `json:"rate"`
	Total      float64 `json:"total"`
	GuestCount int     `json:"guestCount"`
	Sequence   int     `json:"sequence"`
}

type StayDetailResponse struct {
	StayResponse
	NightCharges []NightChargeResponse `json:"nightCharges"`
	CancelReason string                `json:"cancelReason,omitempty"`
}

// StayBalanceResponse kết quả đối soát tài chính của một pernoite
type StayBalanceResponse struct {
	StayID      uint    `json:"stayId"`
	Charged     float64 `json:"charged"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
	PercentPaid float64 `json:"percentPaid"`
}
