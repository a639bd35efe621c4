package models

import (
	"time"
)

// Role values carried in session tokens
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
)

// Account is the authentication identity behind a profile
type Account struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	Provider     string    `json:"provider" db:"provider"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile represents a rider identity
type Profile struct {
	ID          string    `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	AvatarURL   string    `json:"avatar_url" db:"avatar_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateProfileRequest carries the editable profile fields; nil means unchanged
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
}

// DriverProfileStatus is the verification state of a driver
type DriverProfileStatus string

const (
	DriverStatusPendingVerification DriverProfileStatus = "pending_verification"
	DriverStatusVerified            DriverProfileStatus = "verified"
	DriverStatusSuspended           DriverProfileStatus = "suspended"
)

// DriverProfile holds vehicle and identity data and gates access to the driver app
type DriverProfile struct {
	UserID       string              `json:"user_id" db:"user_id"`
	FirstName    string              `json:"first_name" db:"first_name"`
	LastName     string              `json:"last_name" db:"last_name"`
	Phone        string              `json:"phone" db:"phone"`
	City         string              `json:"city" db:"city"`
	VehicleMake  string              `json:"vehicle_make" db:"vehicle_make"`
	VehicleModel string              `json:"vehicle_model" db:"vehicle_model"`
	VehicleYear  int                 `json:"vehicle_year" db:"vehicle_year"`
	VehicleColor string              `json:"vehicle_color" db:"vehicle_color"`
	LicensePlate string              `json:"license_plate" db:"license_plate"`
	Status       DriverProfileStatus `json:"status" db:"status"`
	CreatedAt    time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" db:"updated_at"`
}

// DriverProfileRequest is the registration / settings payload for drivers
type DriverProfileRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
	VehicleColor string `json:"vehicle_color"`
	LicensePlate string `json:"license_plate"`
}

// FullName joins first and last name
func (d *DriverProfile) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}
