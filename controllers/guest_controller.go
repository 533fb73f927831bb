package controllers

import (
	"strconv"

	"pousada/config"
	"pousada/dto"
	"pousada/models"
	"pousada/response"
	"pousada/services"
	"pousada/validator"

	"github.com/gin-gonic/gin"
)

// GetGuests godoc
// @Summary Danh sách khách, có phân trang
// @Tags guests
// @Router /api/v1/guests [get]
func GetGuests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := config.DB.Model(&models.Guest{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var guests []models.Guest
	if err := config.DB.Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		items = append(items, toGuestResponse(&g))
	}

	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// SearchGuests godoc
// @Summary Tìm khách theo tên hoặc CPF, có xếp hạng gần đúng
// @Tags guests
// @Router /api/v1/guests/search [get]
func SearchGuests(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Từ khóa không được để trống")
		return
	}

	var guests []models.Guest
	if err := config.DB.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	matched := services.SearchGuests(query, guests)

	items := make([]dto.GuestResponse, 0, len(matched))
	for _, g := range matched {
		items = append(items, toGuestResponse(&g))
	}

	response.SuccessWithTotal(c, items, len(items))
}

// GetGuestDetail godoc
// @Summary Chi tiết khách kèm công ty liên kết
// @Tags guests
// @Router /api/v1/guests/{id} [get]
func GetGuestDetail(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID khách không hợp lệ")
		return
	}

	var guest models.Guest
	if err := config.DB.Preload("Companies").First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, guest)
}

// CreateGuest godoc
// @Summary Tạo khách mới
// @Tags guests
// @Router /api/v1/guests [post]
func CreateGuest(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateGuest(req.Name, req.CPF, req.Phone, req.Email); err != nil {
		handleServiceError(c, err)
		return
	}

	var existing models.Guest
	if err := config.DB.Where("cpf = ?", req.CPF).First(&existing).Error; err == nil {
		response.Conflict(c, "CPF đã được đăng ký")
		return
	}

	guest := models.Guest{
		Name:   req.Name,
		CPF:    req.CPF,
		Phone:  req.Phone,
		Email:  req.Email,
		CityID: req.CityID,
	}
	if req.BirthDate != "" {
		guest.BirthDate = &req.BirthDate
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toGuestResponse(&guest))
}

// UpdateGuest godoc
// @Summary Cập nhật khách, CPF không đổi được
// @Tags guests
// @Router /api/v1/guests/{id} [put]
func UpdateGuest(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID khách không hợp lệ")
		return
	}

	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateGuest(req.Name, guest.CPF, req.Phone, req.Email); err != nil {
		handleServiceError(c, err)
		return
	}

	guest.Name = req.Name
	guest.Phone = req.Phone
	guest.Email = req.Email
	guest.CityID = req.CityID
	if req.BirthDate != "" {
		guest.BirthDate = &req.BirthDate
	}

	if err := config.DB.Save(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toGuestResponse(&guest))
}

// DeleteGuest godoc
// @Summary Xóa khách chưa có lịch sử lưu trú
// @Tags guests
// @Router /api/v1/guests/{id} [delete]
func DeleteGuest(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID khách không hợp lệ")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var linkCount int64
	if err := config.DB.Model(&models.NightChargeGuest{}).
		Where("guest_id = ?", guest.ID).
		Count(&linkCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if linkCount > 0 {
		response.Conflict(c, "Khách đã có lịch sử lưu trú, không thể xóa")
		return
	}

	if err := config.DB.Delete(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": guest.ID})
}

func toGuestResponse(guest *models.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		ID:        guest.ID,
		Name:      guest.Name,
		CPF:       guest.CPF,
		Phone:     guest.Phone,
		Email:     guest.Email,
		Lodged:    guest.Lodged,
		StayCount: guest.StayCount,
	}
}
