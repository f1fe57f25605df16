package transform

import (
	"github.com/ruking/advancement-etl/clean"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// DonorCampaignSummaryProcessor builds FactDonorCampaignSummary from
// DONOR_CAMP_SUM.
type DonorCampaignSummaryProcessor struct {
	logger *utils.ETLLogger
	issues *models.IssueLog
}

func NewDonorCampaignSummaryProcessor(logger *utils.ETLLogger, issues *models.IssueLog) *DonorCampaignSummaryProcessor {
	return &DonorCampaignSummaryProcessor{logger: logger, issues: issues}
}

// Process builds the donor campaign summary fact: a straight copy with
// numeric coercion over the amount and count columns.
func (p *DonorCampaignSummaryProcessor) Process(donorCampSum *models.Table) *models.Table {
	p.logger.Info("Building FactDonorCampaignSummary...")

	fact := clean.ConvertNumericColumns(donorCampSum, []string{"AMT", "_NUM"}, p.issues)
	fact.Name = "FactDonorCampaignSummary"

	p.logger.Info("  Created %d donor campaign summary records", fact.RowCount())
	return fact
}
