package main

import (
	"beacon/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AlertModel{},
		model.UserDeviceModel{},
		model.CampaignModel{},
		model.CampaignBookmarkModel{},
		model.KeywordModel{},
		model.KeywordSubscriptionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
