package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

// YearDimensionProcessor builds DimYear from the distinct year keys of the
// donor summary tables, deriving display forms of the fiscal year so reports
// can slice by year without parsing codes.
type YearDimensionProcessor struct {
	logger *utils.ETLLogger
}

func NewYearDimensionProcessor(logger *utils.ETLLogger) *YearDimensionProcessor {
	return &YearDimensionProcessor{logger: logger}
}

var yearKey = []string{"YR_CDE", "YEAR_TYPE"}

// Process builds the year dimension from every distinct (YR_CDE, YEAR_TYPE)
// pair found in the two summary tables. Either source may be nil. A year
// code that is not a plain year number is passed through without derived
// fields.
func (p *YearDimensionProcessor) Process(donorYearSum, donorCampSum *models.Table) *models.Table {
	p.logger.Info("Building DimYear...")

	dim := models.NewTable("DimYear",
		[]string{"YR_CDE", "FISCAL_YEAR", "FISCAL_YEAR_FULL", "CALENDAR_YEAR", "YEAR_TYPE"})

	seen := make(map[string]bool)
	for _, src := range []*models.Table{donorYearSum, donorCampSum} {
		if src == nil || !src.HasColumns(yearKey) {
			continue
		}
		for _, r := range src.Rows {
			yr := r.Value("YR_CDE")
			if yr.IsMissing() {
				continue
			}
			key := models.KeyOf(r, yearKey)
			if seen[key] {
				continue
			}
			seen[key] = true
			dim.Rows = append(dim.Rows, yearRow(yr, r.Value("YEAR_TYPE")))
		}
	}

	sort.Slice(dim.Rows, func(i, j int) bool {
		a, b := dim.Rows[i], dim.Rows[j]
		if a.Value("YR_CDE").Str != b.Value("YR_CDE").Str {
			return a.Value("YR_CDE").Str < b.Value("YR_CDE").Str
		}
		return a.Value("YEAR_TYPE").Str < b.Value("YEAR_TYPE").Str
	})

	p.logger.Info("  Created %d year records", dim.RowCount())
	return dim
}

func yearRow(yr, yearType models.Value) models.Row {
	row := models.Row{
		"YR_CDE":    yr,
		"YEAR_TYPE": yearType,
	}

	year, err := strconv.Atoi(strings.TrimSpace(yr.Str))
	if yr.Kind != models.KindString || err != nil {
		row["FISCAL_YEAR"] = yr
		row["FISCAL_YEAR_FULL"] = yr
		row["CALENDAR_YEAR"] = models.NullValue()
		return row
	}

	row["FISCAL_YEAR"] = models.StringValue(fmt.Sprintf("FY%02d", year%100))
	row["FISCAL_YEAR_FULL"] = models.StringValue(fmt.Sprintf("FY%d", year))
	row["CALENDAR_YEAR"] = models.NumberValue(decimal.NewFromInt(int64(year)))
	return row
}
