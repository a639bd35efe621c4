package usecase

import (
	"context"
	"strings"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

const minVehicleYear = 1980

// RegisterDriver creates the driver profile that unlocks the driver app
func (uc *UserUC) RegisterDriver(ctx context.Context, userID string, req *models.DriverProfileRequest) (*models.DriverProfile, error) {
	driver := &models.DriverProfile{UserID: userID}
	if err := uc.applyDriverRequest(driver, req); err != nil {
		return nil, err
	}

	if err := uc.userRepo.CreateDriverProfile(ctx, driver); err != nil {
		return nil, err
	}

	logger.Info("Driver registered",
		logger.String("user_id", userID),
		logger.String("city", driver.City))

	return uc.userRepo.GetDriverProfile(ctx, userID)
}

// GetDriverProfile retrieves a driver's profile
func (uc *UserUC) GetDriverProfile(ctx context.Context, userID string) (*models.DriverProfile, error) {
	return uc.userRepo.GetDriverProfile(ctx, userID)
}

// UpdateDriverProfile replaces the editable driver fields
func (uc *UserUC) UpdateDriverProfile(ctx context.Context, userID string, req *models.DriverProfileRequest) (*models.DriverProfile, error) {
	driver, err := uc.userRepo.GetDriverProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.applyDriverRequest(driver, req); err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateDriverProfile(ctx, driver); err != nil {
		return nil, err
	}

	return uc.userRepo.GetDriverProfile(ctx, userID)
}

func (uc *UserUC) applyDriverRequest(driver *models.DriverProfile, req *models.DriverProfileRequest) error {
	fields := make(map[string]string)

	driver.FirstName = utils.SanitizeString(req.FirstName)
	driver.LastName = utils.SanitizeString(req.LastName)
	driver.City = utils.SanitizeString(req.City)
	driver.VehicleMake = utils.SanitizeString(req.VehicleMake)
	driver.VehicleModel = utils.SanitizeString(req.VehicleModel)
	driver.VehicleColor = utils.SanitizeString(req.VehicleColor)
	driver.LicensePlate = strings.ToUpper(utils.SanitizeString(req.LicensePlate))
	driver.VehicleYear = req.VehicleYear

	for field, value := range map[string]string{
		"first_name":    driver.FirstName,
		"vehicle_make":  driver.VehicleMake,
		"vehicle_model": driver.VehicleModel,
		"license_plate": driver.LicensePlate,
	} {
		if value == "" {
			fields[field] = "is required"
		}
	}

	phone, err := utils.NormalizePhone(req.Phone)
	switch {
	case err != nil:
		fields["phone"] = err.Error()
	case phone == "":
		fields["phone"] = "is required"
	}
	driver.Phone = phone

	if maxYear := uc.now().Year() + 1; req.VehicleYear < minVehicleYear || req.VehicleYear > maxYear {
		fields["vehicle_year"] = "is out of range"
	}

	return models.NewValidationError(fields)
}
