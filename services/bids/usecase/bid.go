package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

// PlaceBid offers riderID's price for a trip
func (uc *BidUC) PlaceBid(ctx context.Context, riderID string, req *models.PlaceBidRequest) (*models.Bid, error) {
	fields := make(map[string]string)
	if req.TripID == "" {
		fields["trip_id"] = "is required"
	} else if !utils.IsValidID(req.TripID) {
		fields["trip_id"] = "must be a valid id"
	}
	if !utils.ValidAmount(req.Amount) {
		fields["amount"] = "must be a positive number"
	}
	message := utils.SanitizeString(req.Message)
	if len(message) > maxMessageLength {
		fields["message"] = fmt.Sprintf("must be at most %d characters", maxMessageLength)
	}
	if err := models.NewValidationError(fields); err != nil {
		return nil, err
	}

	bid := &models.Bid{
		TripID:  req.TripID,
		RiderID: riderID,
		Amount:  req.Amount,
		Message: message,
	}
	if err := uc.bidRepo.CreateBid(ctx, bid); err != nil {
		return nil, err
	}

	logger.Info("Bid placed",
		logger.String("bid_id", bid.ID),
		logger.String("trip_id", bid.TripID),
		logger.String("rider_id", riderID),
		logger.Float64("amount", bid.Amount))

	return uc.refetchAndPublish(ctx, bid.ID, models.EventBidPlaced)
}

// IncreaseBid raises the amount of a pending bid
func (uc *BidUC) IncreaseBid(ctx context.Context, riderID, bidID string, req *models.IncreaseBidRequest) (*models.Bid, error) {
	bid, err := uc.riderBid(ctx, riderID, bidID)
	if err != nil {
		return nil, err
	}
	if !utils.ValidAmount(req.Amount) {
		return nil, models.NewValidationError(map[string]string{"amount": "must be a positive number"})
	}
	if req.Amount <= bid.Amount {
		return nil, models.NewValidationError(map[string]string{
			"amount": fmt.Sprintf("must be higher than your current bid of %.0f", bid.Amount),
		})
	}

	if err := uc.bidRepo.IncreaseBidAmount(ctx, bidID, riderID, req.Amount); err != nil {
		return nil, err
	}

	return uc.refetchAndPublish(ctx, bidID, models.EventBidIncreased)
}

// WithdrawBid deletes a pending bid
func (uc *BidUC) WithdrawBid(ctx context.Context, riderID, bidID string) error {
	bid, err := uc.riderBid(ctx, riderID, bidID)
	if err != nil {
		return err
	}

	if err := uc.bidRepo.DeleteBid(ctx, bidID, riderID); err != nil {
		return err
	}

	uc.publish(ctx, models.EventBidWithdrawn, bid)
	return nil
}

// RespondToBid lets the trip's driver accept or reject a pending bid.
// Accepting takes one of the trip's free seats.
func (uc *BidUC) RespondToBid(ctx context.Context, driverID, bidID string, accept bool) (*models.Bid, error) {
	bid, err := uc.bidRepo.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid.DriverID != driverID {
		return nil, fmt.Errorf("bid is on another driver's trip: %w", models.ErrForbidden)
	}
	if bid.Status != models.BidStatusPending {
		return nil, fmt.Errorf("bid is already %s: %w", bid.Status, models.ErrConflict)
	}

	eventType := models.EventBidRejected
	if accept {
		eventType = models.EventBidAccepted
		err = uc.bidRepo.AcceptBid(ctx, bidID, bid.TripID)
	} else {
		err = uc.bidRepo.RejectBid(ctx, bidID)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Bid answered",
		logger.String("bid_id", bidID),
		logger.String("driver_id", driverID),
		logger.Bool("accepted", accept))

	return uc.refetchAndPublish(ctx, bidID, eventType)
}

// riderBid loads a bid that riderID owns and can still change
func (uc *BidUC) riderBid(ctx context.Context, riderID, bidID string) (*models.Bid, error) {
	bid, err := uc.bidRepo.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid.RiderID != riderID {
		return nil, fmt.Errorf("bid belongs to another rider: %w", models.ErrForbidden)
	}
	if bid.Status != models.BidStatusPending {
		return nil, fmt.Errorf("bid is already %s: %w", bid.Status, models.ErrConflict)
	}
	return bid, nil
}

func (uc *BidUC) refetchAndPublish(ctx context.Context, bidID string, eventType models.EventType) (*models.Bid, error) {
	bid, err := uc.bidRepo.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, eventType, bid)
	return bid, nil
}
