package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

type purchaseFinder interface {
	GetUserPurchaseByTransactionID(ctx context.Context, arg sqlc.GetUserPurchaseByTransactionIDParams) (sqlc.Purchase, error)
	GetPurchaseByTransactionID(ctx context.Context, transactionID string) (sqlc.Purchase, error)
	GetLatestUserPurchaseByProduct(ctx context.Context, arg sqlc.GetLatestUserPurchaseByProductParams) (sqlc.Purchase, error)
}

// ReconcileService matches an inbound payment callback, which arrives with a
// gateway-dependent and sometimes malformed set of identifiers, back to the
// one purchase record it belongs to.
type ReconcileService struct {
	store            purchaseFinder
	defaultProductID string
}

func NewReconcileService(queries *sqlc.Queries, defaultProductID string) *ReconcileService {
	return &ReconcileService{store: queries, defaultProductID: defaultProductID}
}

// Callback is the loosely-typed identifier bundle a gateway redirect carries.
// Every field is optional; presence depends on the gateway.
type Callback struct {
	UserID        string
	TransactionID string
	PaymentID     string
	OrderID       string
	ProductName   string
}

// Resolve runs an ordered, degrading search. Each step is attempted only when
// the previous one found nothing; the first match wins.
//
//  1. the literal transaction id under the user
//  2. a re-normalised free-path token, when the id smells free-path but is
//     malformed (known upstream quirk: separators get mangled in transit)
//  3. the raw payment id as a transaction id, unscoped
//  4. the latest purchase of the default coaching program under the user
func (s *ReconcileService) Resolve(ctx context.Context, cb Callback) (*domain.PurchaseRecord, error) {
	if cb.UserID != "" && cb.TransactionID != "" {
		rec, err := s.byUserAndTransaction(ctx, cb.UserID, cb.TransactionID)
		if err == nil {
			return rec, nil
		}
		if err != domain.ErrPurchaseNotFound {
			return nil, err
		}

		if candidate := normalizeFreeTransactionID(cb.TransactionID); candidate != "" && candidate != cb.TransactionID {
			rec, err := s.byUserAndTransaction(ctx, cb.UserID, candidate)
			if err == nil {
				return rec, nil
			}
			if err != domain.ErrPurchaseNotFound {
				return nil, err
			}
		}
	}

	if cb.PaymentID != "" {
		row, err := s.store.GetPurchaseByTransactionID(ctx, cb.PaymentID)
		if err == nil {
			return purchaseFromRow(row), nil
		}
		if err != pgx.ErrNoRows {
			return nil, fmt.Errorf("find purchase by payment id: %w", err)
		}
	}

	// Last resort, coarse: only safe while a single default program exists.
	if cb.UserID != "" {
		row, err := s.store.GetLatestUserPurchaseByProduct(ctx, sqlc.GetLatestUserPurchaseByProductParams{
			UserID:    cb.UserID,
			ProductID: s.defaultProductID,
		})
		if err == nil {
			return purchaseFromRow(row), nil
		}
		if err != pgx.ErrNoRows {
			return nil, fmt.Errorf("find default program purchase: %w", err)
		}
	}

	return nil, domain.ErrPurchaseNotFound
}

func (s *ReconcileService) byUserAndTransaction(ctx context.Context, userID, txID string) (*domain.PurchaseRecord, error) {
	row, err := s.store.GetUserPurchaseByTransactionID(ctx, sqlc.GetUserPurchaseByTransactionIDParams{
		UserID:        userID,
		TransactionID: txID,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("find purchase by transaction id: %w", err)
	}
	return purchaseFromRow(row), nil
}

var (
	freeTokenPattern = regexp.MustCompile(`^free_\d+_[A-Za-z0-9]+$`)
	idSeparators     = regexp.MustCompile(`[^A-Za-z0-9]+`)
	allDigits        = regexp.MustCompile(`^\d+$`)
)

// normalizeFreeTransactionID rebuilds the canonical free_<ts>_<suffix> token
// from an id whose separators were mangled upstream. Returns "" when the id
// is not free-path shaped or already canonical.
func normalizeFreeTransactionID(id string) string {
	if freeTokenPattern.MatchString(id) {
		return ""
	}
	if !strings.Contains(strings.ToLower(id), "free") {
		return ""
	}

	parts := idSeparators.Split(strings.ToLower(id), -1)
	cleaned := parts[:0]
	for _, p := range parts {
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) < 3 || cleaned[0] != "free" || !allDigits.MatchString(cleaned[1]) {
		return ""
	}
	return "free_" + cleaned[1] + "_" + strings.Join(cleaned[2:], "")
}
