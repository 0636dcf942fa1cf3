package impl

import (
	"testing"
	"time"

	"stempel/config"
	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) *AccrualPolicy {
	t.Helper()

	return NewAccrualPolicy(&config.LoyaltyConfig{
		VIPBonus: map[string]int{
			"bronze":   1,
			"silver":   2,
			"gold":     3,
			"platinum": 5,
		},
		ClampMode: config.ClampModeFinal,
	})
}

func activeCampaign(now time.Time) *entity.Campaign {
	return &entity.Campaign{
		Name:       "Sommeraktion",
		Multiplier: 2,
		StartDate:  now.Add(-24 * time.Hour),
		EndDate:    now.Add(72 * time.Hour),
		Status:     entity.CampaignStatusActive,
	}
}

func validGeo() geo.Result {
	return geo.Result{Valid: true}
}

func TestDecide_GeoRejectionWinsOverEverything(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.Status = entity.CampaignStatusExpired

	// Geo failure, expired campaign and duplicate all at once: the location
	// rejection must be the one that surfaces.
	decision := policy.Decide(PolicyInput{
		Now:            now,
		Geo:            geo.Result{Valid: false, Reason: geo.ReasonGPSDistance},
		Campaign:       campaign,
		AlreadyAccrued: true,
	})

	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrGeoOutOfRange, decision.Reject)
}

func TestDecide_WrongCountryMapsToCountryMismatch(t *testing.T) {
	policy := testPolicy(t)

	decision := policy.Decide(PolicyInput{
		Now: time.Now(),
		Geo: geo.Result{Valid: false, Reason: geo.ReasonWrongCountry},
	})

	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrCountryMismatch, decision.Reject)
}

func TestDecide_ExpiredCampaign(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.EndDate = now.Add(-48 * time.Hour)

	decision := policy.Decide(PolicyInput{Now: now, Geo: validGeo(), Campaign: campaign})
	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrCampaignExpired, decision.Reject)
}

func TestDecide_NotYetStartedCampaignLooksAbsent(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.StartDate = now.Add(24 * time.Hour)

	decision := policy.Decide(PolicyInput{Now: now, Geo: validGeo(), Campaign: campaign})
	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrCampaignNotFound, decision.Reject)
}

func TestDecide_DuplicateScan(t *testing.T) {
	policy := testPolicy(t)

	decision := policy.Decide(PolicyInput{
		Now:            time.Now(),
		Geo:            validGeo(),
		AlreadyAccrued: true,
	})

	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrAlreadyCollectedToday, decision.Reject)
}

func TestDecide_DuplicateCheckedBeforeBudget(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.DailyLimit = 5

	// Budget exhausted and duplicate: duplicate must win so a repeat scanner
	// learns nothing about the remaining budget.
	decision := policy.Decide(PolicyInput{
		Now:             now,
		Geo:             validGeo(),
		Campaign:        campaign,
		AlreadyAccrued:  true,
		PointsPaidToday: 5,
	})

	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrAlreadyCollectedToday, decision.Reject)
}

func TestDecide_PlainScanGrantsOnePoint(t *testing.T) {
	policy := testPolicy(t)

	decision := policy.Decide(PolicyInput{
		Now:  time.Now(),
		Geo:  validGeo(),
		Tier: entity.TierFor(0),
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 1, decision.Points)
	assert.False(t, decision.Clamped)
}

func TestDecide_VIPBonusAddedForEligibleTiers(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	tests := []struct {
		name           string
		lifetimePoints int
		wantPoints     int
	}{
		{"starter gets no bonus", 0, 1},
		{"bronze gets +1", 150, 2},
		{"silver gets +2", 600, 3},
		{"gold gets +3", 1500, 4},
		{"platinum gets +5", 5000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := policy.Decide(PolicyInput{
				Now:  now,
				Geo:  validGeo(),
				Tier: entity.TierFor(tt.lifetimePoints),
			})
			require.Nil(t, decision.Reject)
			assert.Equal(t, tt.wantPoints, decision.Points)
		})
	}
}

func TestDecide_CampaignPointsWithVIPBonus(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.Multiplier = 3
	campaign.ExtraPoints = 2

	decision := policy.Decide(PolicyInput{
		Now:      now,
		Geo:      validGeo(),
		Campaign: campaign,
		Tier:     entity.TierFor(600), // silver, +2
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 7, decision.Points)
}

func TestDecide_DailyLimitReached(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.DailyLimit = 10

	decision := policy.Decide(PolicyInput{
		Now:             now,
		Geo:             validGeo(),
		Campaign:        campaign,
		PointsPaidToday: 10,
	})

	require.NotNil(t, decision.Reject)
	assert.Equal(t, domainerrors.ErrDailyLimitReached, decision.Reject)
}

func TestDecide_FinalClampTrimsWholeGrant(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.Multiplier = 5
	campaign.DailyLimit = 20

	// 18 of 20 paid out; grant of 5+2 is clamped down to the remaining 2.
	decision := policy.Decide(PolicyInput{
		Now:             now,
		Geo:             validGeo(),
		Campaign:        campaign,
		PointsPaidToday: 18,
		Tier:            entity.TierFor(600),
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 2, decision.Points)
	assert.True(t, decision.Clamped)
}

func TestDecide_FinalClampLeavesFittingGrantAlone(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.Multiplier = 2
	campaign.DailyLimit = 20

	decision := policy.Decide(PolicyInput{
		Now:             now,
		Geo:             validGeo(),
		Campaign:        campaign,
		PointsPaidToday: 17,
		Tier:            entity.TierFor(150), // bronze, +1
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 3, decision.Points)
	assert.False(t, decision.Clamped)
}

func TestDecide_BaseClampSparesVIPBonus(t *testing.T) {
	policy := NewAccrualPolicy(&config.LoyaltyConfig{
		VIPBonus:  map[string]int{"silver": 2},
		ClampMode: config.ClampModeBase,
	})
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.Multiplier = 5
	campaign.DailyLimit = 20

	// Base 5 exceeds the remaining 2, so the base is clamped but the VIP
	// bonus rides on top.
	decision := policy.Decide(PolicyInput{
		Now:             now,
		Geo:             validGeo(),
		Campaign:        campaign,
		PointsPaidToday: 18,
		Tier:            entity.TierFor(600),
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 4, decision.Points)
	assert.True(t, decision.Clamped)
}

func TestDecide_NilConfigDefaults(t *testing.T) {
	policy := NewAccrualPolicy(nil)

	decision := policy.Decide(PolicyInput{
		Now:  time.Now(),
		Geo:  validGeo(),
		Tier: entity.TierFor(5000), // platinum, but no bonus table
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 1, decision.Points)
}

func TestDecide_UnlimitedCampaignIgnoresPaidToday(t *testing.T) {
	policy := testPolicy(t)
	now := time.Now()

	campaign := activeCampaign(now)
	campaign.DailyLimit = 0

	decision := policy.Decide(PolicyInput{
		Now:             now,
		Geo:             validGeo(),
		Campaign:        campaign,
		PointsPaidToday: 100000,
	})

	require.Nil(t, decision.Reject)
	assert.Equal(t, 2, decision.Points)
}
