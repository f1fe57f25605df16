package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
)

func TestYearDimensionDerivesFiscalForms(t *testing.T) {
	p := NewYearDimensionProcessor(testLogger(t))

	yearSum := models.NewTable(config.TableDonorYearSum, []string{"ID_NUM", "YR_CDE", "YEAR_TYPE"})
	yearSum.Rows = []models.Row{
		stringRow(map[string]string{"ID_NUM": "1", "YR_CDE": "2024", "YEAR_TYPE": "FSC"}),
		stringRow(map[string]string{"ID_NUM": "2", "YR_CDE": "2024", "YEAR_TYPE": "FSC"}),
		stringRow(map[string]string{"ID_NUM": "1", "YR_CDE": "2023", "YEAR_TYPE": "CAL"}),
	}

	campSum := models.NewTable(config.TableDonorCampSum, []string{"ID_NUM", "CAMPAIGN_CDE", "YR_CDE", "YEAR_TYPE"})
	campSum.Rows = []models.Row{
		// Same pair as the year summary plus one only seen here.
		stringRow(map[string]string{"ID_NUM": "1", "CAMPAIGN_CDE": "ANN", "YR_CDE": "2024", "YEAR_TYPE": "FSC"}),
		stringRow(map[string]string{"ID_NUM": "1", "CAMPAIGN_CDE": "ANN", "YR_CDE": "2025", "YEAR_TYPE": "FSC"}),
	}

	dim := p.Process(yearSum, campSum)

	require.Equal(t, 3, dim.RowCount())
	assert.Equal(t, "DimYear", dim.Name)

	// Sorted by code then type.
	assert.Equal(t, "2023", dim.Rows[0].Value("YR_CDE").Str)
	assert.Equal(t, "2024", dim.Rows[1].Value("YR_CDE").Str)
	assert.Equal(t, "2025", dim.Rows[2].Value("YR_CDE").Str)

	assert.Equal(t, "FY24", dim.Rows[1].Value("FISCAL_YEAR").Str)
	assert.Equal(t, "FY2024", dim.Rows[1].Value("FISCAL_YEAR_FULL").Str)
	assert.Equal(t, models.KindNumber, dim.Rows[1].Value("CALENDAR_YEAR").Kind)
	assert.Equal(t, "2024", dim.Rows[1].Value("CALENDAR_YEAR").Num.String())
}

func TestYearDimensionNonNumericCodePassesThrough(t *testing.T) {
	p := NewYearDimensionProcessor(testLogger(t))

	yearSum := models.NewTable(config.TableDonorYearSum, []string{"YR_CDE", "YEAR_TYPE"})
	yearSum.Rows = []models.Row{
		stringRow(map[string]string{"YR_CDE": "LIFETIME", "YEAR_TYPE": "FSC"}),
	}

	dim := p.Process(yearSum, nil)

	require.Equal(t, 1, dim.RowCount())
	assert.Equal(t, "LIFETIME", dim.Rows[0].Value("FISCAL_YEAR").Str)
	assert.Equal(t, "LIFETIME", dim.Rows[0].Value("FISCAL_YEAR_FULL").Str)
	assert.True(t, dim.Rows[0].Value("CALENDAR_YEAR").IsNull())
}

func TestYearDimensionSkipsMissingCodes(t *testing.T) {
	p := NewYearDimensionProcessor(testLogger(t))

	yearSum := models.NewTable(config.TableDonorYearSum, []string{"YR_CDE", "YEAR_TYPE"})
	yearSum.Rows = []models.Row{
		{"YR_CDE": models.NullValue(), "YEAR_TYPE": models.StringValue("FSC")},
		{"YR_CDE": models.StringValue(""), "YEAR_TYPE": models.StringValue("FSC")},
	}

	dim := p.Process(yearSum, nil)

	assert.Equal(t, 0, dim.RowCount())
}
