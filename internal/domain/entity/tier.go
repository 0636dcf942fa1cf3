package entity

// Tier is a named loyalty band derived from lifetime points.
type Tier string

const (
	TierStarter  Tier = "starter"
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// tierBand is one row of the fixed band table. Max is inclusive; the top band
// is open-ended.
type tierBand struct {
	tier Tier
	min  int
	max  int
}

var tierBands = []tierBand{
	{TierStarter, 0, 99},
	{TierBronze, 100, 499},
	{TierSilver, 500, 999},
	{TierGold, 1000, 1999},
	{TierPlatinum, 2000, -1},
}

// TierStatus is the result of the tier lookup: the band, VIP eligibility and
// progress toward the next band.
type TierStatus struct {
	Tier             Tier
	VIPEligible      bool // Every tier above starter qualifies for VIP bonuses.
	ProgressPercent  int  // Progress within the current band, clamped to [0,100].
	PointsToNextTier int  // Zero for platinum.
}

// TierFor maps lifetime points onto the fixed tier bands. It is deterministic
// and side-effect free so accrual decisions can call it inline.
func TierFor(lifetimePoints int) TierStatus {
	if lifetimePoints < 0 {
		lifetimePoints = 0
	}

	for _, band := range tierBands {
		if band.max >= 0 && lifetimePoints > band.max {
			continue
		}

		if band.max < 0 {
			// Open-ended top band: always full progress.
			return TierStatus{
				Tier:             band.tier,
				VIPEligible:      true,
				ProgressPercent:  100,
				PointsToNextTier: 0,
			}
		}

		width := band.max - band.min + 1
		percent := (lifetimePoints - band.min) * 100 / width
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}

		return TierStatus{
			Tier:             band.tier,
			VIPEligible:      band.tier != TierStarter,
			ProgressPercent:  percent,
			PointsToNextTier: band.max + 1 - lifetimePoints,
		}
	}

	// Unreachable: the band table covers all non-negative values.
	return TierStatus{Tier: TierStarter}
}
