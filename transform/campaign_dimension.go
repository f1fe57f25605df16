package transform

import (
	"github.com/ruking/advancement-etl/clean"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// CampaignDimensionProcessor builds DimCampaign from the CAMPAIGN extract.
type CampaignDimensionProcessor struct {
	logger *utils.ETLLogger
	issues *models.IssueLog
}

func NewCampaignDimensionProcessor(logger *utils.ETLLogger, issues *models.IssueLog) *CampaignDimensionProcessor {
	return &CampaignDimensionProcessor{logger: logger, issues: issues}
}

var campaignColumns = []string{
	"CAMPAIGN_CDE",
	"CAMPAIGN_DESC",
	"PIECES_RET_GOAL",
	"PIECES_RET_ACTUAL",
	"EXPENSES_BUDGET",
	"EXPENSES_ACTUAL",
	"CAMPAN_AMT_GOAL",
	"CAMPAN_AMT_ACTUAL",
	"CAMP_CONTACT_ID_NUM",
	"CAMP_START_DATE",
	"CAMP_END_DATE",
	"ONLINE_GIVING_AVAIL",
	"ONLINE_GIVING_DESC",
}

// Process builds the campaign dimension: fixed projection, numeric coercion
// over goal/actual/budget/piece-count columns, dedup on the campaign code
// keeping the first-seen row.
func (p *CampaignDimensionProcessor) Process(campaign *models.Table) *models.Table {
	p.logger.Info("Building DimCampaign...")

	dim := campaign.Project(campaignColumns)
	dim = clean.ConvertNumericColumns(dim, []string{"AMT", "GOAL", "ACTUAL", "BUDGET", "PIECES"}, p.issues)
	dim = dim.DedupByKey([]string{"CAMPAIGN_CDE"})
	dim.Name = "DimCampaign"

	p.logger.Info("  Created %d campaign records", dim.RowCount())
	return dim
}
