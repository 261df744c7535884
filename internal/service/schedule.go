package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

type sessionStore interface {
	SetPurchaseSession(ctx context.Context, arg sqlc.SetPurchaseSessionParams) (sqlc.Purchase, error)
}

// ScheduleService persists the scheduled coaching session onto a reconciled
// purchase record. The external scheduling provider owns the actual calendar
// booking; this only records where it landed.
type ScheduleService struct {
	store sessionStore
}

func NewScheduleService(queries *sqlc.Queries) *ScheduleService {
	return &ScheduleService{store: queries}
}

// Attach overwrites the purchase's scheduled-session fields. Idempotent:
// re-attaching the same session leaves the record unchanged, and no second
// booking row ever exists.
func (s *ScheduleService) Attach(ctx context.Context, transactionID string, session domain.ScheduledSession) (*domain.PurchaseRecord, error) {
	row, err := s.store.SetPurchaseSession(ctx, sqlc.SetPurchaseSessionParams{
		TransactionID:      transactionID,
		SessionScheduledAt: timeToPgTimestamptz(session.ScheduledAt),
		SessionEventRef:    session.EventRef,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("set purchase session: %w", err)
	}
	return purchaseFromRow(row), nil
}
