package impl

import (
	"time"

	"stempel/config"
	"stempel/internal/domain/entity"
	domainerrors "stempel/internal/domain/errors"
	"stempel/internal/domain/geo"
)

// PolicyInput gathers every fact the accrual decision needs. The orchestrator
// collects them; the policy itself never touches storage.
type PolicyInput struct {
	Now             time.Time
	Geo             geo.Result
	Campaign        *entity.Campaign // nil when the scan carries no campaign.
	AlreadyAccrued  bool
	PointsPaidToday int // Campaign payout so far on the accrual day, all users.
	Tier            entity.TierStatus
}

// PolicyDecision is the outcome of one accrual decision. Reject is nil when
// the scan is granted.
type PolicyDecision struct {
	Points  int
	Clamped bool
	Reject  domainerrors.AppError
}

// AccrualPolicy is the pure decision core of the scan flow. Given the same
// input it always produces the same decision, which keeps it trivially
// testable without storage or clocks.
type AccrualPolicy struct {
	vipBonus  map[string]int
	clampMode string
}

// NewAccrualPolicy builds the policy from loyalty configuration. A nil config
// yields a policy with no VIP bonuses and final-grant clamping.
func NewAccrualPolicy(cfg *config.LoyaltyConfig) *AccrualPolicy {
	policy := &AccrualPolicy{
		vipBonus:  map[string]int{},
		clampMode: config.ClampModeFinal,
	}
	if cfg == nil {
		return policy
	}

	if cfg.VIPBonus != nil {
		policy.vipBonus = cfg.VIPBonus
	}
	if cfg.ClampMode == config.ClampModeBase {
		policy.clampMode = config.ClampModeBase
	}

	return policy
}

// Decide evaluates the rejection rules in order and computes the grant.
// Rule order matters: an out-of-range scan must never surface a campaign or
// duplicate rejection, and the duplicate check precedes the budget check so a
// repeat scanner cannot probe the remaining daily budget.
func (p *AccrualPolicy) Decide(input PolicyInput) PolicyDecision {
	if !input.Geo.Valid {
		return PolicyDecision{Reject: geoReject(input.Geo)}
	}

	if input.Campaign != nil {
		if input.Campaign.ExpiredAt(input.Now) {
			return PolicyDecision{Reject: domainerrors.ErrCampaignExpired}
		}
		if !input.Campaign.Usable(input.Now) {
			// Inactive or not yet started. Indistinguishable from absent on
			// purpose: the campaign does not apply to this scan.
			return PolicyDecision{Reject: domainerrors.ErrCampaignNotFound}
		}
	}

	if input.AlreadyAccrued {
		return PolicyDecision{Reject: domainerrors.ErrAlreadyCollectedToday}
	}

	base := 1
	if input.Campaign != nil {
		base = input.Campaign.BasePoints()
	}

	bonus := 0
	if input.Tier.VIPEligible {
		bonus = p.vipBonus[string(input.Tier.Tier)]
	}

	if input.Campaign == nil || input.Campaign.DailyLimit <= 0 {
		return PolicyDecision{Points: base + bonus}
	}

	remaining := input.Campaign.DailyLimit - input.PointsPaidToday
	if remaining <= 0 {
		return PolicyDecision{Reject: domainerrors.ErrDailyLimitReached}
	}

	if p.clampMode == config.ClampModeBase {
		if base > remaining {
			return PolicyDecision{Points: remaining + bonus, Clamped: true}
		}

		return PolicyDecision{Points: base + bonus}
	}

	total := base + bonus
	if total > remaining {
		return PolicyDecision{Points: remaining, Clamped: true}
	}

	return PolicyDecision{Points: total}
}

// geoReject maps a failed location check onto the public rejection taxonomy.
func geoReject(result geo.Result) domainerrors.AppError {
	if result.Reason == geo.ReasonWrongCountry {
		return domainerrors.ErrCountryMismatch
	}

	return domainerrors.ErrGeoOutOfRange
}
