package controllers

import (
	"strconv"
	"time"

	"pousada/config"
	"pousada/dto"
	"pousada/models"
	"pousada/response"
	"pousada/services"
	"pousada/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type StayController struct {
	staySvc    *services.StayService
	invoiceSvc *services.InvoiceService
	redis      *redis.Client
	melody     *melody.Melody
}

func NewStayController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *StayController {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	return &StayController{
		staySvc:    services.NewStayService(services.StayServiceOptions{DB: db, Logger: log}),
		invoiceSvc: services.NewInvoiceService(services.InvoiceServiceOptions{DB: db, Logger: log}),
		redis:      redisCli,
		melody:     m,
	}
}

// dropBoardCache xóa cache bảng phòng sau khi dữ liệu pernoite thay đổi
func (ctrl *StayController) dropBoardCache() {
	if ctrl.redis == nil {
		return
	}
	_ = services.DeletePatternFromRedis(config.Ctx, ctrl.redis, "rooms:board:*")
	_ = services.DeleteFromRedis(config.Ctx, ctrl.redis, "stays:today")
}

// CreateStay godoc
// @Summary Tạo pernoite mới
// @Tags stays
// @Accept json
// @Produce json
// @Param request body dto.CreateStayRequest true "Pernoite"
// @Success 200 {object} response.Response
// @Router /api/v1/stays [post]
func (ctrl *StayController) CreateStay(c *gin.Context) {
	var req dto.CreateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	stay, err := ctrl.staySvc.CreateStay(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.dropBoardCache()
	services.BroadcastBoardChange(ctrl.melody, services.BoardEvent{
		Type:   "stay_created",
		StayID: stay.ID,
		RoomID: stay.RoomID,
	})

	response.Success(c, toStayResponse(stay, nil))
}

// ExtendStay godoc
// @Summary Gia hạn pernoite thêm đêm mới
// @Tags stays
// @Router /api/v1/stays/{id}/nights [put]
func (ctrl *StayController) ExtendStay(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID pernoite không hợp lệ")
		return
	}

	var req dto.ExtendStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	stay, err := ctrl.staySvc.ExtendStay(uint(stayID), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.dropBoardCache()

	response.Success(c, toStayResponse(stay, nil))
}

// CancelStay godoc
// @Summary Hủy pernoite, giữ nguyên diária đã sinh
// @Tags stays
// @Router /api/v1/stays/{id} [delete]
func (ctrl *StayController) CancelStay(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID pernoite không hợp lệ")
		return
	}

	var req dto.CancelStayRequest
	_ = c.ShouldBindJSON(&req)

	stay, err := ctrl.staySvc.CancelStay(uint(stayID), req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.dropBoardCache()
	services.BroadcastBoardChange(ctrl.melody, services.BoardEvent{
		Type:   "stay_cancelled",
		StayID: stay.ID,
		RoomID: stay.RoomID,
	})

	response.Success(c, toStayResponse(stay, nil))
}

// GetStays godoc
// @Summary Danh sách pernoite, mặc định là các pernoite bao phủ hôm nay
// @Tags stays
// @Router /api/v1/stays [get]
func (ctrl *StayController) GetStays(c *gin.Context) {
	var status *int
	if statusStr := c.Query("status"); statusStr != "" {
		parsed, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
		status = &parsed
	}

	stays, err := ctrl.staySvc.ListByStatus(status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	today := time.Now()
	items := make([]dto.StayResponse, 0, len(stays))
	for i := range stays {
		holder := services.CurrentRepresentative(&stays[i], today)
		items = append(items, toStayResponse(&stays[i], holder))
	}

	response.SuccessWithTotal(c, items, len(items))
}

// GetStayDetail godoc
// @Summary Chi tiết pernoite kèm toàn bộ diária
// @Tags stays
// @Router /api/v1/stays/{id} [get]
func (ctrl *StayController) GetStayDetail(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID pernoite không hợp lệ")
		return
	}

	stay, err := ctrl.staySvc.GetStay(uint(stayID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	holder := services.CurrentRepresentative(stay, time.Now())
	detail := dto.StayDetailResponse{
		StayResponse: toStayResponse(stay, holder),
		CancelReason: stay.CancelReason,
	}
	for _, charge := range stay.NightCharges {
		detail.NightCharges = append(detail.NightCharges, dto.NightChargeResponse{
			ID:         charge.ID,
			StartDate:  charge.StartDate.Format(dto.DateLayout),
			EndDate:    charge.EndDate.Format(dto.DateLayout),
			Rate:       charge.Rate,
			Total:      charge.Total,
			GuestCount: charge.GuestCount,
			Sequence:   charge.Sequence,
		})
	}

	response.Success(c, detail)
}

// GetStayBalance godoc
// @Summary Đối soát tài chính của pernoite
// @Tags stays
// @Router /api/v1/stays/{id}/balance [get]
func (ctrl *StayController) GetStayBalance(c *gin.Context) {
	stayID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID pernoite không hợp lệ")
		return
	}

	balance, err := ctrl.invoiceSvc.ReconcileStay(uint(stayID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, balance)
}

func toStayResponse(stay *models.Stay, holder *models.Guest) dto.StayResponse {
	resp := dto.StayResponse{
		ID:            stay.ID,
		RoomID:        stay.RoomID,
		CheckInDate:   stay.CheckInDate.Format(dto.DateLayout),
		CheckOutDate:  stay.CheckOutDate.Format(dto.DateLayout),
		ArrivalTime:   stay.ArrivalTime,
		DepartureTime: stay.DepartureTime,
		Status:        stay.Status,
		Active:        stay.Active,
		TotalAmount:   stay.TotalAmount,
		NightCount:    len(stay.NightCharges),
	}
	if stay.Room.ID != 0 {
		resp.RoomDescription = stay.Room.Description
	}
	if holder != nil {
		resp.RepresentativeName = holder.Name
		resp.RepresentativeCPF = holder.CPF
	}
	return resp
}
