package main

import (
	"stempel/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StoreModel{},
		model.StoreOwnerModel{},
		model.StoreTokenModel{},
		model.CampaignModel{},
		model.LoyaltyAccountModel{},
		model.PointTransactionModel{},
		model.SuspiciousScanModel{},
		model.ReferralModel{},
		model.WalletPassModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
