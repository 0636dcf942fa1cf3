package impl

import (
	"io"
	"log/slog"

	"stempel/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Loyalty: &config.LoyaltyConfig{
			VIPBonus: map[string]int{
				"bronze":   1,
				"silver":   2,
				"gold":     3,
				"platinum": 5,
			},
			ClampMode:           config.ClampModeFinal,
			ReferralPoints:      10,
			ReferralBonusPoints: 20,
		},
	}
}
