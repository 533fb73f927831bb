package controllers

import (
	"strconv"

	"pousada/config"
	"pousada/models"
	"pousada/response"

	"github.com/gin-gonic/gin"
)

// GetCountries danh sách quốc gia
func GetCountries(c *gin.Context) {
	var countries []models.Country
	if err := config.DB.Order("name").Find(&countries).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, countries)
}

// GetStates danh sách bang, lọc theo quốc gia nếu có
func GetStates(c *gin.Context) {
	query := config.DB.Order("name")
	if countryStr := c.Query("countryId"); countryStr != "" {
		countryID, err := strconv.Atoi(countryStr)
		if err != nil {
			response.BadRequest(c, "ID quốc gia không hợp lệ")
			return
		}
		query = query.Where("country_id = ?", countryID)
	}

	var states []models.State
	if err := query.Find(&states).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, states)
}

// GetCities danh sách thành phố, lọc theo bang nếu có
func GetCities(c *gin.Context) {
	query := config.DB.Order("name")
	if stateStr := c.Query("stateId"); stateStr != "" {
		stateID, err := strconv.Atoi(stateStr)
		if err != nil {
			response.BadRequest(c, "ID bang không hợp lệ")
			return
		}
		query = query.Where("state_id = ?", stateID)
	}

	var cities []models.City
	if err := query.Find(&cities).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, cities)
}
