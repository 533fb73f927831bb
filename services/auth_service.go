package services

import (
	"errors"
	"fmt"
	"time"

	"pousada/config"
	"pousada/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với số điện thoại %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("không được để trống email, password, phone")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("số điện thoại %s đã được sử dụng", existingPhone.PhoneNumber)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		IsVerified:  true,
		Role:        input.Role,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Name:        input.Name,
		RoomIDs:     input.RoomIDs,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func CreateGoogleUser(name, email, avatar string) (models.User, error) {
	existingEmail, err := GetUserByEmail(email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existingEmail.Email)
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   "",
		Avatar:     avatar,
		IsVerified: true,
		Role:       0,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}
