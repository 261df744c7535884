package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

// handlePaymentSuccess is the redirect target for the hosted-checkout
// gateway. Completion of that flow is only observable here, after the page
// reload, so this is where its ledger commit happens — guarded by the
// duplicate-transaction check, which makes reloads harmless.
//
// The contract with the page is: always render success. A failed commit is
// logged and escalated, never shown as a payment failure.
func (h *Handler) handlePaymentSuccess(c *gin.Context) {
	txID := c.Query("transaction_id")
	if txID == "" {
		txID = c.Query("payment_id")
	}
	userID := c.Query("user_id")
	productID := c.Query("product_name")

	if txID == "" || userID == "" || productID == "" {
		slog.Warn("success redirect missing identifiers",
			"transaction_id", txID, "user_id", userID, "product_name", productID)
		c.JSON(http.StatusOK, gin.H{"status": "success"})
		return
	}

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		amount = decimal.Zero
	}
	currency := c.Query("currency")
	if currency == "" {
		currency = config.CanonicalCurrency
	}

	record, err := h.ledger.Commit(c.Request.Context(), service.CommitParams{
		UserID:        userID,
		PlanID:        productID,
		PaymentMethod: domain.PaymentMethodStripe,
		Amount:        amount,
		Currency:      currency,
		CouponCode:    c.Query("coupon_code"),
		TransactionID: txID,
	})
	if err != nil {
		slog.Error("ledger write failed after redirect", "user_id", userID, "transaction_id", txID, "error", err)
		h.notifier.Error(err, "success-page ledger write")
		c.JSON(http.StatusOK, gin.H{"status": "success"})
		return
	}

	h.notifyPurchase(c, record)
	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"transaction_id": record.TransactionID,
	})
}
