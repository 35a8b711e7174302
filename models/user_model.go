package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleTechnician = "technician"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	NameAr    string `json:"name_ar"`
	Email     string `json:"email" gorm:"unique"`
	Phone     string `json:"phone"`
	Role      string `json:"role" gorm:"default:'technician'"`
	RegionID  uint   `json:"region_id"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type UserSession struct {
	gorm.Model
	UserID         uint64    `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"index"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	DeviceID       string    `json:"device_id"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type LoginLog struct {
	gorm.Model
	UserID        *uint64    `json:"user_id"`
	Username      string     `json:"username"`
	SessionID     string     `json:"session_id"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginStatus   string     `json:"login_status"`
	FailureReason *string    `json:"failure_reason"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
}
