package controllers

import (
	"strings"
	"time"

	"inventory-app/config"
	"inventory-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

var loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&loginInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(loginInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var mUser models.User
	if err := c.DB.Where("username = ?", loginInput.Username).First(&mUser).Error; err != nil {
		c.logFailure(ctx, loginInput.Username, "user not found")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "اسم المستخدم أو كلمة المرور غير صحيحة",
		})
	}

	if !mUser.IsActive {
		c.logFailure(ctx, loginInput.Username, "inactive account")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "الحساب غير مفعل",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(mUser.Password), []byte(loginInput.Password)); err != nil {
		c.logFailure(ctx, loginInput.Username, "wrong password")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "اسم المستخدم أو كلمة المرور غير صحيحة",
		})
	}

	// One active session per user.
	c.DB.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", mUser.ID, true).
		Update("is_active", false)

	sessionID := uuid.New().String()
	ip, ua, device := getClientInfo(ctx)
	now := time.Now()

	newSession := models.UserSession{
		UserID:         uint64(mUser.ID),
		SessionID:      sessionID,
		IPAddress:      ip,
		UserAgent:      ua,
		DeviceID:       device,
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Duration(config.JWTExpiration) * time.Second),
	}
	c.DB.Create(&newSession)

	uid := uint64(mUser.ID)
	c.DB.Create(&models.LoginLog{
		UserID:      &uid,
		Username:    mUser.Username,
		SessionID:   sessionID,
		IPAddress:   ip,
		UserAgent:   ua,
		LoginStatus: "SUCCESS",
		LoginAt:     &now,
	})

	access_token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    mUser.ID,
		"session_id": sessionID,
		"role":       mUser.Role,
		"exp":        time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
		"jti":        uuid.NewString(),
	})

	refresh_token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": mUser.ID,
		"exp":     time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
		"jti":     uuid.NewString(),
	})

	accessTokenString, err := access_token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	refreshTokenString, err := refresh_token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(refreshTokenString))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successfully",
		"x_token": accessTokenString,
		"user": fiber.Map{
			"id":       mUser.ID,
			"username": mUser.Username,
			"name":     mUser.Name,
			"name_ar":  mUser.NameAr,
			"email":    mUser.Email,
			"role":     mUser.Role,
		},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	now := time.Now()
	c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)

	var userSession models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).First(&userSession).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	userSession.IsActive = false
	userSession.LastActivityAt = now
	c.DB.Save(&userSession)

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false})
	}

	var user models.User
	if err := c.DB.First(&user, uint(userID)).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"name_ar":  user.NameAr,
			"role":     user.Role,
		},
	})
}

func (c *AuthController) logFailure(ctx *fiber.Ctx, username, reason string) {
	ip, ua, _ := getClientInfo(ctx)
	now := time.Now()
	c.DB.Create(&models.LoginLog{
		Username:      username,
		IPAddress:     ip,
		UserAgent:     ua,
		LoginStatus:   "FAILED",
		FailureReason: &reason,
		LoginAt:       &now,
	})
}

func getClientInfo(ctx *fiber.Ctx) (ip, userAgent, device string) {
	ip = ctx.IP()
	userAgent = ctx.Get("User-Agent")

	device = "desktop"
	uaLower := strings.ToLower(userAgent)
	if strings.Contains(uaLower, "mobile") || strings.Contains(uaLower, "android") ||
		strings.Contains(uaLower, "iphone") {
		device = "mobile"
	}
	return ip, userAgent, device
}
