package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/models"
)

const driverColumns = `user_id, first_name, last_name, phone, city, vehicle_make, vehicle_model,
		vehicle_year, vehicle_color, license_plate, status, created_at, updated_at`

// CreateDriverProfile registers a user as a driver
func (r *UserRepo) CreateDriverProfile(ctx context.Context, driver *models.DriverProfile) error {
	now := models.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now
	if driver.Status == "" {
		driver.Status = models.DriverStatusPendingVerification
	}

	query := `
		INSERT INTO driver_profiles (` + driverColumns + `)
		VALUES (:user_id, :first_name, :last_name, :phone, :city, :vehicle_make, :vehicle_model,
			:vehicle_year, :vehicle_color, :license_plate, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("driver profile already exists: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert driver profile: %w", err)
	}

	return nil
}

// GetDriverProfile retrieves the driver profile of a user
func (r *UserRepo) GetDriverProfile(ctx context.Context, userID string) (*models.DriverProfile, error) {
	query := `SELECT ` + driverColumns + ` FROM driver_profiles WHERE user_id = $1`

	var driver models.DriverProfile
	if err := r.db.GetContext(ctx, &driver, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("driver profile not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}

	return &driver, nil
}

// UpdateDriverProfile writes the editable driver columns. Status is not
// editable by the driver.
func (r *UserRepo) UpdateDriverProfile(ctx context.Context, driver *models.DriverProfile) error {
	driver.UpdatedAt = models.Now()

	query := `
		UPDATE driver_profiles
		SET first_name = :first_name, last_name = :last_name, phone = :phone, city = :city,
			vehicle_make = :vehicle_make, vehicle_model = :vehicle_model, vehicle_year = :vehicle_year,
			vehicle_color = :vehicle_color, license_plate = :license_plate, updated_at = :updated_at
		WHERE user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, driver)
	if err != nil {
		return fmt.Errorf("failed to update driver profile: %w", err)
	}

	return expectOneRow(result, "driver profile")
}
