package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
	"github.com/piresc/tumpang/services/bids"
)

// BidHandler handles bid requests from riders and drivers
type BidHandler struct {
	bidUC bids.BidUC
}

// NewBidHandler creates a new bid handler
func NewBidHandler(bidUC bids.BidUC) *BidHandler {
	return &BidHandler{
		bidUC: bidUC,
	}
}

// PlaceBid offers the caller's price for a trip
func (h *BidHandler) PlaceBid(c echo.Context) error {
	var req models.PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	bid, err := h.bidUC.PlaceBid(c.Request().Context(), middleware.GetUserID(c), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to place bid")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Bid placed successfully", bid)
}

// IncreaseBid raises one of the caller's pending bids
func (h *BidHandler) IncreaseBid(c echo.Context) error {
	var req models.IncreaseBidRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	bid, err := h.bidUC.IncreaseBid(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to increase bid")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid increased successfully", bid)
}

// WithdrawBid deletes one of the caller's pending bids
func (h *BidHandler) WithdrawBid(c echo.Context) error {
	if err := h.bidUC.WithdrawBid(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return utils.HandleError(c, err, "Failed to withdraw bid")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid withdrawn successfully", nil)
}

func (h *BidHandler) AcceptBid(c echo.Context) error {
	bid, err := h.bidUC.RespondToBid(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), true)
	if err != nil {
		return utils.HandleError(c, err, "Failed to accept bid")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid accepted successfully", bid)
}

func (h *BidHandler) RejectBid(c echo.Context) error {
	bid, err := h.bidUC.RespondToBid(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), false)
	if err != nil {
		return utils.HandleError(c, err, "Failed to reject bid")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid rejected successfully", bid)
}

// ListMyBids lists the caller's bids
func (h *BidHandler) ListMyBids(c echo.Context) error {
	result, err := h.bidUC.ListMyBids(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve bids")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bids retrieved successfully", result)
}

// ListReceivedBids lists bids on the caller's trips, optionally for ?trip_id= only
func (h *BidHandler) ListReceivedBids(c echo.Context) error {
	result, err := h.bidUC.ListTripBids(c.Request().Context(), middleware.GetUserID(c), c.QueryParam("trip_id"))
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve bids")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bids retrieved successfully", result)
}
