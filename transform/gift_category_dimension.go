package transform

import (
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// GiftCategoryDimensionProcessor builds DimGiftCategory from GIFT_CATEGORY.
type GiftCategoryDimensionProcessor struct {
	logger *utils.ETLLogger
}

func NewGiftCategoryDimensionProcessor(logger *utils.ETLLogger) *GiftCategoryDimensionProcessor {
	return &GiftCategoryDimensionProcessor{logger: logger}
}

var giftCategoryColumns = []string{
	"APPID",
	"CAT_COMP_1",
	"CAT_COMP_2",
	"GIFT_CAT_DESC",
	"CAMPAIGN_CDE",
	"FIN_AID_ELEMENT",
	"MEM_HONOR_CDE",
	"FUND_TYPE",
	"GIVING_CLUB_CDE",
	"DESIGNATION_CDE",
	"CASE_GROUP",
	"CHARITABLE_FLAG",
	"ONLINE_GIVING_AVAIL",
	"ONLINE_GIVING_DESC",
	"PROJECT_CODE",
}

// Process builds the gift-category dimension, deduped on the three-part
// composite key.
func (p *GiftCategoryDimensionProcessor) Process(giftCategory *models.Table) *models.Table {
	p.logger.Info("Building DimGiftCategory...")

	dim := giftCategory.Project(giftCategoryColumns)
	dim = dim.DedupByKey([]string{"APPID", "CAT_COMP_1", "CAT_COMP_2"})
	dim.Name = "DimGiftCategory"

	p.logger.Info("  Created %d gift category records", dim.RowCount())
	return dim
}
