package main

import (
	"log"
	"net/http"
	"os"

	"pousada/config"
	"pousada/jobs"
	"pousada/models"
	"pousada/routes"
	"pousada/services"
	"pousada/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.Category{},
		&models.CategoryRate{},
		&models.Room{},
		&models.Guest{},
		&models.Company{},
		&models.Stay{},
		&models.NightCharge{},
		&models.NightChargeGuest{},
		&models.NightChargePayment{},
		&models.PaymentType{},
		&models.Report{},
		&models.User{},
		&models.Country{},
		&models.State{},
		&models.City{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

// @title Pousada API
// @version 1.0
// @description API quản lý pernoite, diária và bảng phòng cho pousada
// @BasePath /api/v1
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	stayService := services.NewStayService(services.StayServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetNightCloser(services.NewNightCloseAdapter(stayService))

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
