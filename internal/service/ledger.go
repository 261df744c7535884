package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

// LedgerService applies the post-payment state transition: membership
// activation or extension on the commerce profile plus exactly one purchase
// record, inside a single locked transaction.
type LedgerService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
	coupons *CouponService
}

func NewLedgerService(db *pgxpool.Pool, queries *sqlc.Queries, coupons *CouponService) *LedgerService {
	return &LedgerService{db: db, queries: queries, coupons: coupons}
}

type CommitParams struct {
	UserID        string
	PlanID        string
	PaymentMethod domain.PaymentMethod
	Amount        decimal.Decimal
	Currency      string
	CouponCode    string
	// TransactionID is the gateway-issued identifier. Empty for the free
	// path, where a token is minted locally.
	TransactionID string
}

// Commit records a settled payment. Re-committing a transaction id that has
// already been recorded returns the existing record unchanged, which makes
// the success-page entry point safe under reloads.
func (s *LedgerService) Commit(ctx context.Context, p CommitParams) (*domain.PurchaseRecord, error) {
	plan, err := domain.PlanByID(p.PlanID)
	if err != nil {
		return nil, err
	}

	txID := p.TransactionID
	if p.PaymentMethod == domain.PaymentMethodFree {
		txID = newFreeTransactionID()
	}
	if txID == "" {
		return nil, fmt.Errorf("commit %s purchase: missing transaction id", p.PaymentMethod)
	}

	if existing, err := s.queries.GetPurchaseByTransactionID(ctx, txID); err == nil {
		return purchaseFromRow(existing), nil
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("check existing purchase: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.queries.WithTx(tx)

	if _, err := qtx.UpsertProfile(ctx, p.UserID); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	profile, err := qtx.GetProfileForUpdate(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("lock profile: %w", err)
	}

	if plan.IsMembership() {
		expiry := nextMembershipExpiry(pgTimestamptzToTimePtr(profile.MembershipExpiry), plan.DurationMonths, time.Now())
		if err := qtx.SetMembership(ctx, sqlc.SetMembershipParams{
			UserID:           p.UserID,
			IsMember:         true,
			MembershipPlanID: plan.ID,
			MembershipExpiry: timeToPgTimestamptz(expiry),
		}); err != nil {
			return nil, fmt.Errorf("set membership: %w", err)
		}
	}

	row, err := qtx.CreatePurchase(ctx, sqlc.CreatePurchaseParams{
		TransactionID: txID,
		UserID:        p.UserID,
		ProductID:     plan.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(domain.PurchaseStatusCompleted),
	})
	if err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Usage accounting is ordered after the commit and is best-effort.
	if p.CouponCode != "" {
		s.coupons.RecordUsage(ctx, p.CouponCode)
	}

	return purchaseFromRow(row), nil
}

// Profile returns the user's commerce profile.
func (s *LedgerService) Profile(ctx context.Context, userID string) (*domain.CommerceProfile, error) {
	row, err := s.queries.GetProfile(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profileFromRow(row), nil
}

// nextMembershipExpiry extends additively: a member renewing before expiry
// keeps the unused time; an expired or absent membership restarts from now.
func nextMembershipExpiry(current *time.Time, months int, now time.Time) time.Time {
	if current != nil && current.After(now) {
		return current.AddDate(0, months, 0)
	}
	return now.AddDate(0, months, 0)
}

// newFreeTransactionID mints the free-path token. The format is load-bearing:
// reconciliation recognises it by the free_ prefix.
func newFreeTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("free_%d_%s", time.Now().UnixMilli(), suffix)
}
