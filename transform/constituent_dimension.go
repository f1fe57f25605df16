package transform

import (
	"github.com/ruking/advancement-etl/clean"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// ConstituentDimensionProcessor builds DimConstituent from NAME_MASTER
// enriched with a curated DONOR_MASTER subset and an alumni membership flag.
type ConstituentDimensionProcessor struct {
	logger *utils.ETLLogger
	issues *models.IssueLog
}

func NewConstituentDimensionProcessor(logger *utils.ETLLogger, issues *models.IssueLog) *ConstituentDimensionProcessor {
	return &ConstituentDimensionProcessor{logger: logger, issues: issues}
}

var constituentNameColumns = []string{
	"ID_NUM", "LAST_NAME", "FIRST_NAME", "MIDDLE_NAME", "PREFIX", "SUFFIX",
}

var constituentDonorColumns = []string{
	"ID_NUM",
	"PREF_MAIL_NM",
	"PREF_FST_NM",
	"PREF_LST_NM",
	"DONOR_MAIL_CODE",
	"ESTATE_PLAN_FLR",
	"ESTATE_PLAN_DOC",
	"YRS_CONT_GIVING",
	"NUM_GIVING_YRS",
	"AVG_GIFT_SIZE",
	"ANON_DONOR_FLAG",
	"DONOR_SELECT",
	"ACTIVE_FLAG",
	"STOP_MAIL_FLAG",
	"CURR_ADDR_CDE",
	"RECEIPT_SALUT",
	"SINGLE_SALUT",
	"JOINT_SALUT",
	"FIRST_GIFT_DTE",
	"FIRST_GIFT_AMT",
	"LAST_GIFT_DTE",
	"LAST_GIFT_AMT",
	"LARGEST_GIFT_DTE",
	"LARGEST_GIFT_AMT",
	"SMALLEST_GIFT_DTE",
	"SMALLEST_GIFT_AMT",
}

// Process builds the constituent dimension. The donor subset gets numeric
// coercion on its amount/count/size columns before the join; the final dedup
// on ID_NUM keeps a source with duplicate identifiers from propagating
// duplicates downstream. alumniMaster may be nil.
func (p *ConstituentDimensionProcessor) Process(nameMaster, donorMaster, alumniMaster *models.Table) *models.Table {
	p.logger.Info("Building DimConstituent...")

	dim := nameMaster.Project(constituentNameColumns)

	donorSubset := donorMaster.Project(constituentDonorColumns)
	donorSubset = clean.ConvertNumericColumns(donorSubset, []string{"AMT", "YRS", "NUM", "SIZE"}, p.issues)

	dim = dim.LeftJoin(donorSubset, []string{"ID_NUM"}, "_DONOR")

	if alumniMaster != nil && alumniMaster.HasColumn("ID_NUM") {
		alumniIDs := make(map[string]bool, alumniMaster.RowCount())
		for _, r := range alumniMaster.Rows {
			alumniIDs[r.Value("ID_NUM").Str] = true
		}
		dim.Columns = append(dim.Columns, "IS_ALUMNI")
		for _, r := range dim.Rows {
			r["IS_ALUMNI"] = models.BoolValue(alumniIDs[r.Value("ID_NUM").Str])
		}
	}

	dim = dim.DedupByKey([]string{"ID_NUM"})
	dim.Name = "DimConstituent"

	p.logger.Info("  Created %d constituent records", dim.RowCount())
	return dim
}
