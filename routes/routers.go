package routes

import (
	"context"
	"net/http"

	"pousada/controllers"
	_ "pousada/docs"
	middlewares "pousada/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	stayController := controllers.NewStayController(db, redisCli, m)
	roomController := controllers.NewRoomController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.POST("/stays", middlewares.AuthMiddleware(0, 1, 2), stayController.CreateStay)
	v1.GET("/stays", middlewares.AuthMiddleware(0, 1, 2), stayController.GetStays)
	v1.GET("/stays/:id", middlewares.AuthMiddleware(0, 1, 2), stayController.GetStayDetail)
	v1.PUT("/stays/:id/nights", middlewares.AuthMiddleware(0, 1, 2), stayController.ExtendStay)
	v1.DELETE("/stays/:id", middlewares.AuthMiddleware(1, 2), stayController.CancelStay)
	v1.GET("/stays/:id/balance", middlewares.AuthMiddleware(0, 1, 2), stayController.GetStayBalance)

	v1.GET("/rooms", middlewares.SessionMiddleware(), roomController.GetRooms)
	v1.GET("/rooms/statuses", controllers.GetRoomStatuses)
	v1.GET("/rooms/categories", controllers.GetCategories)
	v1.GET("/rooms/enum", controllers.GetRoomsEnum)
	v1.GET("/rooms/:id/status", roomController.GetRoomStatus)
	v1.POST("/rooms", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoom)
	v1.PUT("/roomStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRoomStatus)

	v1.GET("/guests", controllers.GetGuests)
	v1.GET("/guests/search", controllers.SearchGuests)
	v1.GET("/guests/:id", controllers.GetGuestDetail)
	v1.POST("/guests", controllers.CreateGuest)
	v1.PUT("/guests/:id", controllers.UpdateGuest)
	v1.DELETE("/guests/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteGuest)

	v1.GET("/companies", controllers.GetCompanies)
	v1.GET("/companies/:id", controllers.GetCompanyDetail)
	v1.POST("/companies", controllers.CreateCompany)
	v1.PUT("/companies/:id", controllers.UpdateCompany)
	v1.DELETE("/companies/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteCompany)
	v1.POST("/companies/:id/guests", controllers.LinkGuestToCompany)
	v1.DELETE("/companies/:id/guests/:guestId", controllers.UnlinkGuestFromCompany)

	v1.GET("/payment-types", controllers.GetPaymentTypes)

	v1.GET("/reports", middlewares.AuthMiddleware(1, 2), controllers.GetReports)
	v1.POST("/reports", middlewares.AuthMiddleware(1, 2), controllers.CreateReport)
	v1.PUT("/reports/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateReport)
	v1.DELETE("/reports/:id", middlewares.AuthMiddleware(2), controllers.DeleteReport)

	v1.GET("/countries", controllers.GetCountries)
	v1.GET("/states", controllers.GetStates)
	v1.GET("/cities", controllers.GetCities)

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", middlewares.AuthMiddleware(0, 1, 2), controllers.GetProfile)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})
}
