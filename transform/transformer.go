// Package transform builds the star schema: five dimension tables, a derived
// fiscal-year dimension and three fact tables, each produced by its own
// processor from the cleaned source tables.
package transform

import (
	"time"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// Transformer coordinates the dimension and fact processors. A builder whose
// required sources were not loaded is skipped entirely; the run never fails
// on absent inputs.
type Transformer struct {
	logger *utils.ETLLogger
	issues *models.IssueLog

	constituentProcessor  *ConstituentDimensionProcessor
	alumniProcessor       *AlumniDimensionProcessor
	campaignProcessor     *CampaignDimensionProcessor
	giftCategoryProcessor *GiftCategoryDimensionProcessor
	solicitationProcessor *SolicitationDimensionProcessor
	yearProcessor         *YearDimensionProcessor
	giftTranProcessor     *GiftTransactionFactsProcessor
	donorYearProcessor    *DonorYearSummaryProcessor
	donorCampProcessor    *DonorCampaignSummaryProcessor
}

// NewTransformer creates a Transformer and its processors. Parsing issues
// found during numeric coercion are recorded in issues.
func NewTransformer(logger *utils.ETLLogger, issues *models.IssueLog) *Transformer {
	return &Transformer{
		logger:                logger,
		issues:                issues,
		constituentProcessor:  NewConstituentDimensionProcessor(logger, issues),
		alumniProcessor:       NewAlumniDimensionProcessor(logger),
		campaignProcessor:     NewCampaignDimensionProcessor(logger, issues),
		giftCategoryProcessor: NewGiftCategoryDimensionProcessor(logger),
		solicitationProcessor: NewSolicitationDimensionProcessor(logger),
		yearProcessor:         NewYearDimensionProcessor(logger),
		giftTranProcessor:     NewGiftTransactionFactsProcessor(logger, issues),
		donorYearProcessor:    NewDonorYearSummaryProcessor(logger, issues),
		donorCampProcessor:    NewDonorCampaignSummaryProcessor(logger, issues),
	}
}

// Transform builds every dimension and fact table whose sources are present.
// Dropped-row counts from the fact filters are accumulated into runLog.
func (t *Transformer) Transform(tables map[string]*models.Table, runLog *models.RunLog) *models.StarSchema {
	startTime := time.Now()
	t.logger.Info("Starting Transform phase (building star schema)")

	schema := models.NewStarSchema()

	nameMaster := tables[config.TableNameMaster]
	donorMaster := tables[config.TableDonorMaster]
	alumniMaster := tables[config.TableAlumniMaster]
	campaign := tables[config.TableCampaign]
	giftCategory := tables[config.TableGiftCategory]
	solicitDef := tables[config.TableSolicitDef]
	giftTran := tables[config.TableGiftTran]
	giftMaster := tables[config.TableGiftMaster]
	donorYearSum := tables[config.TableDonorYearSum]
	donorCampSum := tables[config.TableDonorCampSum]

	// Dimension tables
	if nameMaster != nil && donorMaster != nil {
		schema.Add(t.constituentProcessor.Process(nameMaster, donorMaster, alumniMaster))
	} else {
		t.logger.Error("Skipping DimConstituent: name_master or donor_master not loaded")
	}

	if alumniMaster != nil {
		schema.Add(t.alumniProcessor.Process(alumniMaster))
	}

	if campaign != nil {
		schema.Add(t.campaignProcessor.Process(campaign))
	}

	if giftCategory != nil {
		schema.Add(t.giftCategoryProcessor.Process(giftCategory))
	}

	if solicitDef != nil {
		schema.Add(t.solicitationProcessor.Process(solicitDef))
	}

	if donorYearSum != nil || donorCampSum != nil {
		schema.Add(t.yearProcessor.Process(donorYearSum, donorCampSum))
	}

	// Fact tables
	if giftTran != nil && giftMaster != nil {
		fact, dropped := t.giftTranProcessor.Process(giftTran, giftMaster)
		runLog.RowsDropped += dropped
		schema.Add(fact)
	} else {
		t.logger.Error("Skipping FactGiftTransaction: gift_tran or gift_master not loaded")
	}

	if donorYearSum != nil {
		schema.Add(t.donorYearProcessor.Process(donorYearSum))
	}

	if donorCampSum != nil {
		schema.Add(t.donorCampProcessor.Process(donorCampSum))
	}

	t.logger.Info("Transform phase complete: %d tables in %v", len(schema.Tables), time.Since(startTime))
	return schema
}
