package transform

import (
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// SolicitationDimensionProcessor builds DimSolicitation from SOLICIT_DEF.
type SolicitationDimensionProcessor struct {
	logger *utils.ETLLogger
}

func NewSolicitationDimensionProcessor(logger *utils.ETLLogger) *SolicitationDimensionProcessor {
	return &SolicitationDimensionProcessor{logger: logger}
}

// Process builds the two-column solicitation dimension, deduped on the code.
func (p *SolicitationDimensionProcessor) Process(solicitDef *models.Table) *models.Table {
	p.logger.Info("Building DimSolicitation...")

	dim := solicitDef.Project([]string{"SOLICIT_CDE", "DESCRIPTION"})
	dim = dim.DedupByKey([]string{"SOLICIT_CDE"})
	dim.Name = "DimSolicitation"

	p.logger.Info("  Created %d solicitation records", dim.RowCount())
	return dim
}
