package controllers

import (
	"inventory-app/models"
	"inventory-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

var userInput struct {
	ID       uint   `json:"id"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password"`
	Name     string `json:"name" validate:"required"`
	NameAr   string `json:"name_ar"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=admin supervisor technician"`
	RegionID uint   `json:"region_id"`
	IsActive *bool  `json:"is_active"`
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	userRepo := repositories.NewUserRepository(c.DB)
	users, err := userRepo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": users})
}

func (c *UserController) GetTechnicians(ctx *fiber.Ctx) error {
	userRepo := repositories.NewUserRepository(c.DB)
	users, err := userRepo.ListTechnicians()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"success": true, "data": users})
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if len(userInput.Password) < 6 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
	}

	user := models.User{
		Username:  userInput.Username,
		Password:  userInput.Password,
		Name:      userInput.Name,
		NameAr:    userInput.NameAr,
		Email:     userInput.Email,
		Phone:     userInput.Phone,
		Role:      userInput.Role,
		RegionID:  userInput.RegionID,
		IsActive:  true,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	userRepo := repositories.NewUserRepository(c.DB)
	if err := userRepo.Create(&user); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	userRepo := repositories.NewUserRepository(c.DB)
	user, err := userRepo.GetByID(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if userInput.Name != "" {
		user.Name = userInput.Name
	}
	if userInput.NameAr != "" {
		user.NameAr = userInput.NameAr
	}
	if userInput.Email != "" {
		user.Email = userInput.Email
	}
	if userInput.Phone != "" {
		user.Phone = userInput.Phone
	}
	if userInput.Role != "" {
		user.Role = userInput.Role
	}
	if userInput.RegionID != 0 {
		user.RegionID = userInput.RegionID
	}
	if userInput.IsActive != nil {
		user.IsActive = *userInput.IsActive
	}
	if userInput.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		user.Password = string(hashed)
	}
	user.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := userRepo.Update(user); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": user})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	userRepo := repositories.NewUserRepository(c.DB)
	if err := userRepo.Delete(uint(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "User deleted"})
}
