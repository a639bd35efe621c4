package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

// CreateTrip validates the trip form and posts a new active trip for driverID
func (uc *TripUC) CreateTrip(ctx context.Context, driverID string, req *models.CreateTripRequest) (*models.Trip, error) {
	from := utils.SanitizeString(req.FromLocation)
	to := utils.SanitizeString(req.ToLocation)

	fields := utils.TripFormErrors(req.Price.String(), req.Seats.String(), req.TripDate, req.TripTime)
	if from == "" {
		fields["from_location"] = "is required"
	}
	if to == "" {
		fields["to_location"] = "is required"
	}
	if _, bad := fields["trip_date"]; !bad {
		date, err := time.Parse(dateLayout, req.TripDate)
		switch {
		case err != nil:
			fields["trip_date"] = "is not a valid calendar date"
		case date.Before(uc.today()):
			fields["trip_date"] = "must not be in the past"
		}
	}
	if err := models.NewValidationError(fields); err != nil {
		return nil, err
	}

	isDriver, err := uc.tripRepo.HasDriverProfile(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !isDriver {
		return nil, models.ErrDriverProfileRequired
	}

	price, _ := utils.ValidatePrice(req.Price.String())
	seats, _ := utils.ValidateSeats(req.Seats.String())

	trip := &models.Trip{
		DriverID:       driverID,
		FromLocation:   from,
		ToLocation:     to,
		TripDate:       req.TripDate,
		TripTime:       req.TripTime,
		Price:          price,
		AvailableSeats: seats,
		TotalSeats:     seats,
		Description:    utils.SanitizeString(req.Description),
		Status:         models.TripStatusActive,
	}
	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("Trip created",
		logger.String("trip_id", trip.ID),
		logger.String("driver_id", driverID),
		logger.String("trip_date", trip.TripDate))

	uc.publish(ctx, models.EventTripCreated, trip)

	return uc.tripRepo.GetTripByID(ctx, trip.ID)
}

// CompleteTrip marks an open trip as completed
func (uc *TripUC) CompleteTrip(ctx context.Context, driverID, tripID string) (*models.Trip, error) {
	return uc.closeTrip(ctx, driverID, tripID, models.TripStatusCompleted, models.EventTripCompleted)
}

// CancelTrip marks an open trip as cancelled
func (uc *TripUC) CancelTrip(ctx context.Context, driverID, tripID string) (*models.Trip, error) {
	return uc.closeTrip(ctx, driverID, tripID, models.TripStatusCancelled, models.EventTripCancelled)
}

func (uc *TripUC) closeTrip(ctx context.Context, driverID, tripID string, status models.TripStatus, eventType models.EventType) (*models.Trip, error) {
	trip, err := uc.ownedTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Status.IsOpen() {
		return nil, fmt.Errorf("trip is already %s: %w", trip.Status, models.ErrConflict)
	}

	if err := uc.tripRepo.UpdateTripStatus(ctx, tripID, driverID, status); err != nil {
		return nil, err
	}

	closed, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, eventType, closed)

	return closed, nil
}

// DeleteTrip removes a trip owned by driverID
func (uc *TripUC) DeleteTrip(ctx context.Context, driverID, tripID string) error {
	trip, err := uc.ownedTrip(ctx, driverID, tripID)
	if err != nil {
		return err
	}

	if err := uc.tripRepo.DeleteTrip(ctx, tripID, driverID); err != nil {
		return err
	}

	logger.Info("Trip deleted",
		logger.String("trip_id", tripID),
		logger.String("driver_id", driverID))

	uc.publish(ctx, models.EventTripDeleted, trip)
	return nil
}

func (uc *TripUC) ownedTrip(ctx context.Context, driverID, tripID string) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, fmt.Errorf("trip belongs to another driver: %w", models.ErrForbidden)
	}
	return trip, nil
}
