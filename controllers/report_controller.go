package controllers

import (
	"strconv"
	"time"

	"pousada/config"
	"pousada/dto"
	"pousada/models"
	"pousada/response"
	"pousada/validator"

	"github.com/gin-gonic/gin"
)

// GetReports godoc
// @Summary Danh sách báo cáo, lọc theo kỳ, loại thanh toán, phòng, pernoite
// @Tags reports
// @Router /api/v1/reports [get]
func GetReports(c *gin.Context) {
	var filters dto.ReportFilterRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Bộ lọc không hợp lệ")
		return
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 20
	}

	query := config.DB.Model(&models.Report{}).Preload("PaymentType")

	if filters.FromDate != "" {
		from, err := time.Parse(dto.DateLayout, filters.FromDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		query = query.Where("date >= ?", from)
	}
	if filters.ToDate != "" {
		to, err := time.Parse(dto.DateLayout, filters.ToDate)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		query = query.Where("date <= ?", to)
	}
	if filters.PaymentTypeID != nil {
		query = query.Where("payment_type_id = ?", *filters.PaymentTypeID)
	}
	if filters.RoomID != nil {
		query = query.Where("room_id = ?", *filters.RoomID)
	}
	if filters.StayID != nil {
		query = query.Where("stay_id = ?", *filters.StayID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reports []models.Report
	if err := query.Order("date DESC").
		Offset((filters.Page - 1) * filters.Limit).
		Limit(filters.Limit).
		Find(&reports).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, reports, filters.Page, filters.Limit, int(total))
}

// CreateReport godoc
// @Summary Tạo báo cáo mới
// @Tags reports
// @Router /api/v1/reports [post]
func CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	date, err := validator.ValidateReport(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	report := models.Report{
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		PaymentTypeID: req.PaymentTypeID,
		RoomID:        req.RoomID,
		StayID:        req.StayID,
	}

	if err := config.DB.Create(&report).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, report)
}

// UpdateReport cập nhật báo cáo
func UpdateReport(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID báo cáo không hợp lệ")
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	date, err := validator.ValidateReport(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	var report models.Report
	if err := config.DB.First(&report, reportID).Error; err != nil {
		response.NotFound(c)
		return
	}

	report.Description = req.Description
	report.Amount = req.Amount
	report.Date = date
	report.PaymentTypeID = req.PaymentTypeID
	report.RoomID = req.RoomID
	report.StayID = req.StayID

	if err := config.DB.Save(&report).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, report)
}

// DeleteReport xóa báo cáo
func DeleteReport(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID báo cáo không hợp lệ")
		return
	}

	var report models.Report
	if err := config.DB.First(&report, reportID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&report).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": report.ID})
}
