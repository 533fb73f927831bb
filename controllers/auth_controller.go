package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"pousada/config"
	"pousada/dto"
	"pousada/models"
	"pousada/response"
	"pousada/services"
	"pousada/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Đăng nhập bằng email hoặc số điện thoại
// @Tags auth
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, dto.LoginResponse{
		Token: accessToken,
		User:  toUserResponse(&user),
	})
}

// Logout xóa cookie phiên đăng nhập
func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// RegisterUser godoc
// @Summary Tạo tài khoản nhân viên
// @Tags auth
// @Router /api/v1/auth/register [post]
func RegisterUser(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidate := models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	if err := validator.ValidateUser(&candidate); err != nil {
		handleServiceError(c, err)
		return
	}

	user, err := services.CreateUser(candidate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, toUserResponse(&user))
}

// AuthGoogle function để xử lý yêu cầu xác thực từ Google
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	// Bind dữ liệu token từ request
	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Xác minh tokenId từ Google
	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	name, _ := payload.Claims["name"].(string)
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	picture, _ := payload.Claims["picture"].(string)

	// Kiểm tra nếu email chưa được xác thực
	if !verified {
		response.BadRequest(c, "Email chưa được xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Nếu chưa có tài khoản thì tạo tài khoản mới
		user, err = services.CreateGoogleUser(name, email, picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 15, true)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: accessToken,
		User:  toUserResponse(&user),
	})
}

// verifyGoogleIDToken function - Xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// GetProfile thông tin tài khoản hiện tại
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
		Avatar:      user.Avatar,
		RoomIDs:     user.RoomIDs,
	}
}
