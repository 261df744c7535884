package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

type bookingReq struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	EventRef      string    `json:"event_ref" binding:"required"`
	InviteeEmail  string    `json:"invitee_email"`

	// Identifier bundle from the payment callback, all optional and
	// gateway-dependent.
	UserID        string `json:"user_id"`
	TransactionID string `json:"transaction_id"`
	PaymentID     string `json:"payment_id"`
	OrderID       string `json:"order_id"`
	ProductName   string `json:"product_name"`
}

// handleBooking attaches an externally committed scheduling-provider booking
// to the purchase it belongs to. The provider has already confirmed the slot,
// so the user always sees success; a reconciliation miss is an ops problem,
// not a user-facing one.
func (h *Handler) handleBooking(c *gin.Context) {
	var req bookingReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.reconcile.Resolve(c.Request.Context(), service.Callback{
		UserID:        req.UserID,
		TransactionID: req.TransactionID,
		PaymentID:     req.PaymentID,
		OrderID:       req.OrderID,
		ProductName:   req.ProductName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			slog.Warn("booking reconciliation miss",
				"user_id", req.UserID,
				"transaction_id", req.TransactionID,
				"payment_id", req.PaymentID,
			)
			h.notifier.ReconcileMiss(req.UserID, req.TransactionID, req.PaymentID)
		} else {
			slog.Error("booking reconciliation failed", "user_id", req.UserID, "error", err)
			h.notifier.Error(err, "booking reconciliation")
		}
		c.JSON(http.StatusOK, gin.H{"booked": true})
		return
	}

	if _, err := h.schedule.Attach(c.Request.Context(), record.TransactionID, domain.ScheduledSession{
		ScheduledAt: req.ScheduledDate,
		EventRef:    req.EventRef,
	}); err != nil {
		slog.Error("attach scheduled session", "transaction_id", record.TransactionID, "error", err)
		h.notifier.Error(err, "booking attach")
		c.JSON(http.StatusOK, gin.H{"booked": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booked":         true,
		"transaction_id": record.TransactionID,
	})
}
