package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextMembershipExpiryAdditiveWhenActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := now.AddDate(0, 0, 10)

	got := nextMembershipExpiry(&current, 3, now)
	assert.Equal(t, current.AddDate(0, 3, 0), got, "early renewal must keep unused time")
}

func TestNextMembershipExpiryResetsWhenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expired := now.AddDate(0, 0, -1)

	got := nextMembershipExpiry(&expired, 3, now)
	assert.Equal(t, now.AddDate(0, 3, 0), got)
}

func TestNextMembershipExpiryResetsWhenAbsent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got := nextMembershipExpiry(nil, 12, now)
	assert.Equal(t, now.AddDate(0, 12, 0), got)
}

func TestNewFreeTransactionIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^free_\d+_[a-f0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newFreeTransactionID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate token %s", id)
		seen[id] = true
	}
}
