package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrialExpired(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	member := TeamMember{
		SubscriptionStatus: SubscriptionTRIAL,
		TrialStart:         start,
	}

	assert.False(t, member.TrialExpired(start))
	assert.False(t, member.TrialExpired(start.AddDate(0, 0, TrialDays)))
	assert.True(t, member.TrialExpired(start.AddDate(0, 0, TrialDays).Add(time.Second)))
	assert.True(t, member.TrialExpired(start.AddDate(0, 0, 30)))
}

func TestTrialExpiredActiveNeverExpires(t *testing.T) {
	member := TeamMember{
		SubscriptionStatus: SubscriptionACTIVE,
		TrialStart:         time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, member.TrialExpired(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
}

func TestInheritedSubscription(t *testing.T) {
	now := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	adminStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	admin := &TeamMember{
		SubscriptionStatus: SubscriptionTRIAL,
		TrialStart:         adminStart,
	}

	status, trialStart := InheritedSubscription(admin, now)
	assert.Equal(t, SubscriptionTRIAL, status)
	assert.Equal(t, adminStart, trialStart)

	// A member added on day 13 expires with the admin, not 14 days later.
	member := TeamMember{SubscriptionStatus: status, TrialStart: trialStart}
	assert.True(t, member.TrialExpired(adminStart.AddDate(0, 0, TrialDays).Add(time.Second)))

	// Active companies pass their status along.
	admin.SubscriptionStatus = SubscriptionACTIVE
	status, _ = InheritedSubscription(admin, now)
	assert.Equal(t, SubscriptionACTIVE, status)
}

func TestInheritedSubscriptionWithoutAdmin(t *testing.T) {
	now := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)

	status, trialStart := InheritedSubscription(nil, now)
	assert.Equal(t, SubscriptionTRIAL, status)
	assert.Equal(t, now, trialStart)

	status, trialStart = InheritedSubscription(&TeamMember{}, now)
	assert.Equal(t, SubscriptionTRIAL, status)
	assert.Equal(t, now, trialStart)
}

func TestTrialExpiredExpiredStatus(t *testing.T) {
	member := TeamMember{
		SubscriptionStatus: SubscriptionEXPIRED,
		TrialStart:         time.Now(),
	}

	assert.True(t, member.TrialExpired(time.Now()))
}
