package controllers

import (
	"strconv"

	"pousada/config"
	"pousada/dto"
	"pousada/models"
	"pousada/response"
	"pousada/validator"

	"github.com/gin-gonic/gin"
)

// GetCompanies danh sách công ty
func GetCompanies(c *gin.Context) {
	var companies []models.Company
	if err := config.DB.Order("name").Find(&companies).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.SuccessWithTotal(c, companies, len(companies))
}

// GetCompanyDetail chi tiết công ty kèm khách liên kết
func GetCompanyDetail(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID công ty không hợp lệ")
		return
	}

	var company models.Company
	if err := config.DB.Preload("Guests").First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, company)
}

// CreateCompany godoc
// @Summary Tạo công ty mới
// @Tags companies
// @Router /api/v1/companies [post]
func CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateCompany(req.Name, req.CNPJ); err != nil {
		handleServiceError(c, err)
		return
	}

	var existing models.Company
	if err := config.DB.Where("cnpj = ?", req.CNPJ).First(&existing).Error; err == nil {
		response.Conflict(c, "CNPJ đã được đăng ký")
		return
	}

	company := models.Company{
		Name:  req.Name,
		CNPJ:  req.CNPJ,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := config.DB.Create(&company).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, company)
}

// UpdateCompany cập nhật công ty, CNPJ không đổi được
func UpdateCompany(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID công ty không hợp lệ")
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateCompany(req.Name, company.CNPJ); err != nil {
		handleServiceError(c, err)
		return
	}

	company.Name = req.Name
	company.Phone = req.Phone
	company.Email = req.Email

	if err := config.DB.Save(&company).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, company)
}

// DeleteCompany xóa công ty, gỡ hết liên kết khách trước
func DeleteCompany(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID công ty không hợp lệ")
		return
	}

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&company).Association("Guests").Clear(); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&company).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": company.ID})
}

// LinkGuestToCompany liên kết khách với công ty
func LinkGuestToCompany(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID công ty không hợp lệ")
		return
	}

	var req dto.LinkGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, req.GuestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&company).Association("Guests").Append(&guest); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"companyId": company.ID, "guestId": guest.ID})
}

// UnlinkGuestFromCompany gỡ liên kết khách khỏi công ty
func UnlinkGuestFromCompany(c *gin.Context) {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID công ty không hợp lệ")
		return
	}

	guestID, err := strconv.Atoi(c.Param("guestId"))
	if err != nil {
		response.BadRequest(c, "ID khách không hợp lệ")
		return
	}

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&company).Association("Guests").Delete(&guest); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"companyId": company.ID, "guestId": guest.ID})
}
