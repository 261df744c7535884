package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

type fakeSessionStore struct {
	records map[string]sqlc.Purchase
	calls   int
}

func (f *fakeSessionStore) SetPurchaseSession(_ context.Context, arg sqlc.SetPurchaseSessionParams) (sqlc.Purchase, error) {
	f.calls++
	p, ok := f.records[arg.TransactionID]
	if !ok {
		return sqlc.Purchase{}, pgx.ErrNoRows
	}
	p.SessionScheduledAt = arg.SessionScheduledAt
	p.SessionEventRef = arg.SessionEventRef
	f.records[arg.TransactionID] = p
	return p, nil
}

func TestAttachIdempotent(t *testing.T) {
	store := &fakeSessionStore{records: map[string]sqlc.Purchase{
		"pay_123": {TransactionID: "pay_123", UserID: "u1"},
	}}
	svc := &ScheduleService{store: store}

	session := domain.ScheduledSession{
		ScheduledAt: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		EventRef:    "evt_abc",
	}

	first, err := svc.Attach(context.Background(), "pay_123", session)
	require.NoError(t, err)
	second, err := svc.Attach(context.Background(), "pay_123", session)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-attaching the same session must not change the record")
	require.NotNil(t, second.ScheduledSession)
	assert.Equal(t, "evt_abc", second.ScheduledSession.EventRef)
	assert.True(t, session.ScheduledAt.Equal(second.ScheduledSession.ScheduledAt))
	assert.Len(t, store.records, 1, "no duplicate booking rows")
}

func TestAttachUnknownTransaction(t *testing.T) {
	svc := &ScheduleService{store: &fakeSessionStore{records: map[string]sqlc.Purchase{}}}

	_, err := svc.Attach(context.Background(), "missing", domain.ScheduledSession{
		ScheduledAt: time.Now(),
		EventRef:    "evt_abc",
	})
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}
