package usecase

import (
	"context"
	"errors"

	"github.com/piresc/tumpang/internal/pkg/models"
	"golang.org/x/sync/errgroup"
)

// BrowseTrips lists the bookable trips a rider has not bid on or booked yet
func (uc *TripUC) BrowseTrips(ctx context.Context, riderID, search string) ([]*models.Trip, error) {
	var (
		available  []*models.Trip
		bidIDs     []string
		bookingIDs []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		available, err = uc.tripRepo.ListBrowsableTrips(gctx, uc.today().Format(dateLayout))
		return err
	})
	g.Go(func() error {
		var err error
		bidIDs, err = uc.tripRepo.ListBidTripIDs(gctx, riderID)
		return err
	})
	g.Go(func() error {
		var err error
		bookingIDs, err = uc.tripRepo.ListBookingTripIDs(gctx, riderID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(bidIDs)+len(bookingIDs))
	for _, id := range bidIDs {
		excluded[id] = struct{}{}
	}
	for _, id := range bookingIDs {
		excluded[id] = struct{}{}
	}
	for _, trip := range available {
		if trip.DriverID == riderID {
			excluded[trip.ID] = struct{}{}
		}
	}

	return FilterTrips(available, excluded, search), nil
}

// ListMyTrips lists a driver's trips with their pending bid counts
func (uc *TripUC) ListMyTrips(ctx context.Context, driverID string) ([]*models.TripWithBidCount, error) {
	owned, err := uc.tripRepo.ListTripsByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(owned))
	for _, trip := range owned {
		ids = append(ids, trip.ID)
	}

	counts, err := uc.tripRepo.CountPendingBids(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*models.TripWithBidCount, 0, len(owned))
	for _, trip := range owned {
		result = append(result, &models.TripWithBidCount{
			Trip:        *trip,
			PendingBids: counts[trip.ID],
		})
	}
	return result, nil
}

// GetTripDetail returns a trip with the caller's own bid and booking on it and
// whether the caller may still bid or book
func (uc *TripUC) GetTripDetail(ctx context.Context, userID, tripID string) (*models.TripDetail, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	detail := &models.TripDetail{Trip: trip}
	if trip.DriverID == userID {
		return detail, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bid, err := uc.tripRepo.GetRiderBid(gctx, tripID, userID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return err
		}
		detail.MyBid = bid
		return nil
	})
	g.Go(func() error {
		booking, err := uc.tripRepo.GetRiderBooking(gctx, tripID, userID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return err
		}
		detail.MyBooking = booking
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bookable := trip.Status == models.TripStatusActive && trip.AvailableSeats > 0
	holdsBid := detail.MyBid != nil && detail.MyBid.Status != models.BidStatusRejected
	holdsBooking := detail.MyBooking != nil && detail.MyBooking.Status != models.BookingStatusCanceled

	detail.CanBid = bookable && detail.MyBid == nil && !holdsBooking
	detail.CanBook = bookable && detail.MyBooking == nil && !holdsBid
	return detail, nil
}
