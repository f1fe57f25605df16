package transform

import (
	"fmt"

	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// AlumniDimensionProcessor builds DimAlumni as a column-subset projection of
// ALUMNI_MASTER.
type AlumniDimensionProcessor struct {
	logger *utils.ETLLogger
}

func NewAlumniDimensionProcessor(logger *utils.ETLLogger) *AlumniDimensionProcessor {
	return &AlumniDimensionProcessor{logger: logger}
}

func alumniColumns() []string {
	cols := []string{"ID_NUM", "REUNION_YR_1", "REUNION_YR_2", "REUNION_YR_3"}
	for i := 1; i <= 6; i++ {
		cols = append(cols, fmt.Sprintf("EDUCATION_INT_%02d", i))
	}
	return append(cols,
		"LAST_UPDATE_DTE",
		"LAST_VISIT_DTE",
		"NEXT_VISIT_DTE",
		"CURR_ATTITUDE",
		"STOP_ALUM_MAIL",
		"CURR_ADDR_CDE",
		"WORK_ADDR_CDE",
		"EMAIL_1",
		"EMAIL_2",
		"CITY_SIZE",
	)
}

// Process builds the alumni dimension, deduped on ID_NUM.
func (p *AlumniDimensionProcessor) Process(alumniMaster *models.Table) *models.Table {
	p.logger.Info("Building DimAlumni...")

	dim := alumniMaster.Project(alumniColumns())
	dim = dim.DedupByKey([]string{"ID_NUM"})
	dim.Name = "DimAlumni"

	p.logger.Info("  Created %d alumni records", dim.RowCount())
	return dim
}
