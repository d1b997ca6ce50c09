package main

import (
	"github.com/Sebastian609/SOA-PARTNERS/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PartnerModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
