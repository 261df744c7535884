package service

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

// pgTimestamptzToTimePtr converts pgtype.Timestamptz to *time.Time.
func pgTimestamptzToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if ts.Valid {
		t := ts.Time
		return &t
	}
	return nil
}

// pgTimestamptzToTime converts pgtype.Timestamptz to time.Time.
func pgTimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if ts.Valid {
		return ts.Time
	}
	return time.Time{}
}

// timeToPgTimestamptz converts time.Time to pgtype.Timestamptz.
func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func purchaseFromRow(row sqlc.Purchase) *domain.PurchaseRecord {
	rec := &domain.PurchaseRecord{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		UserID:        row.UserID,
		ProductID:     row.ProductID,
		Amount:        row.Amount,
		Currency:      row.Currency,
		PaymentMethod: domain.PaymentMethod(row.PaymentMethod),
		Status:        domain.PurchaseStatus(row.Status),
		CreatedAt:     pgTimestamptzToTime(row.CreatedAt),
	}
	if row.SessionScheduledAt.Valid {
		rec.ScheduledSession = &domain.ScheduledSession{
			ScheduledAt: row.SessionScheduledAt.Time,
			EventRef:    row.SessionEventRef,
		}
	}
	return rec
}

func couponFromRow(row sqlc.Coupon) *domain.Coupon {
	return &domain.Coupon{
		ID:                row.ID,
		Code:              row.Code,
		DiscountPercent:   row.DiscountPercent,
		ApplicablePlanIDs: row.ApplicablePlanIds,
		UsageCount:        int(row.UsageCount),
		MaxUses:           int(row.MaxUses),
		ExpiresAt:         pgTimestamptzToTimePtr(row.ExpiresAt),
		CreatedAt:         pgTimestamptzToTime(row.CreatedAt),
	}
}

func profileFromRow(row sqlc.CommerceProfile) *domain.CommerceProfile {
	return &domain.CommerceProfile{
		UserID:           row.UserID,
		IsMember:         row.IsMember,
		MembershipPlanID: row.MembershipPlanID,
		MembershipExpiry: pgTimestamptzToTimePtr(row.MembershipExpiry),
		CreatedAt:        pgTimestamptzToTime(row.CreatedAt),
		UpdatedAt:        pgTimestamptzToTime(row.UpdatedAt),
	}
}
