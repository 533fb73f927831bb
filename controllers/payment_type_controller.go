package controllers

import (
	"pousada/config"
	"pousada/models"
	"pousada/response"

	"github.com/gin-gonic/gin"
)

// GetPaymentTypes danh sách loại thanh toán cho dropdown
func GetPaymentTypes(c *gin.Context) {
	var types []models.PaymentType
	if err := config.DB.Order("id").Find(&types).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, types)
}
