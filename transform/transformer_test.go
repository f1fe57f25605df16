package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruking/advancement-etl/config"
	"github.com/ruking/advancement-etl/models"
	"github.com/ruking/advancement-etl/utils"
)

func testLogger(t *testing.T) *utils.ETLLogger {
	t.Helper()
	logger, err := utils.NewETLLogger(t.TempDir(), false)
	require.NoError(t, err)
	return logger
}

func stringRow(kv map[string]string) models.Row {
	r := make(models.Row, len(kv))
	for k, v := range kv {
		r[k] = models.StringValue(v)
	}
	return r
}

func TestTransformSkipsBuildersWithMissingSources(t *testing.T) {
	issues := models.NewIssueLog()
	transformer := NewTransformer(testLogger(t), issues)
	runLog := models.NewRunLog()

	solicit := models.NewTable(config.TableSolicitDef, []string{"SOLICIT_CDE", "DESCRIPTION"})
	solicit.Rows = []models.Row{stringRow(map[string]string{"SOLICIT_CDE": "PH", "DESCRIPTION": "Phonathon"})}

	schema := transformer.Transform(map[string]*models.Table{
		config.TableSolicitDef: solicit,
	}, runLog)

	// Only the solicitation dimension had its source.
	require.Len(t, schema.Tables, 1)
	assert.Equal(t, "DimSolicitation", schema.Tables[0].Name)
	assert.Nil(t, schema.Get("DimConstituent"))
	assert.Nil(t, schema.Get("FactGiftTransaction"))
}

func TestTransformBuildsFullSchema(t *testing.T) {
	issues := models.NewIssueLog()
	transformer := NewTransformer(testLogger(t), issues)
	runLog := models.NewRunLog()

	tables := map[string]*models.Table{
		config.TableNameMaster:   tableOf(config.TableNameMaster, []string{"ID_NUM", "LAST_NAME"}, [][2]string{{"ID_NUM", "1"}, {"LAST_NAME", "Smith"}}),
		config.TableDonorMaster:  tableOf(config.TableDonorMaster, []string{"ID_NUM", "AVG_GIFT_SIZE"}, [][2]string{{"ID_NUM", "1"}, {"AVG_GIFT_SIZE", "25"}}),
		config.TableAlumniMaster: tableOf(config.TableAlumniMaster, []string{"ID_NUM"}, [][2]string{{"ID_NUM", "1"}}),
		config.TableCampaign:     tableOf(config.TableCampaign, []string{"CAMPAIGN_CDE"}, [][2]string{{"CAMPAIGN_CDE", "ANN"}}),
		config.TableGiftCategory: tableOf(config.TableGiftCategory, []string{"APPID", "CAT_COMP_1", "CAT_COMP_2"}, [][2]string{{"APPID", "1"}, {"CAT_COMP_1", "A"}, {"CAT_COMP_2", "B"}}),
		config.TableSolicitDef:   tableOf(config.TableSolicitDef, []string{"SOLICIT_CDE"}, [][2]string{{"SOLICIT_CDE", "PH"}}),
		config.TableGiftTran:     tableOf(config.TableGiftTran, []string{"GIFT_GROUP_NUM", "GIFT_NUM", "DONOR_ID"}, [][2]string{{"GIFT_GROUP_NUM", "G1"}, {"GIFT_NUM", "1"}, {"DONOR_ID", "1"}}),
		config.TableGiftMaster:   tableOf(config.TableGiftMaster, []string{"GIFT_GROUP_NUM", "GIFT_NUM", "GIFT_AMT"}, [][2]string{{"GIFT_GROUP_NUM", "G1"}, {"GIFT_NUM", "1"}, {"GIFT_AMT", "100"}}),
		config.TableDonorYearSum: tableOf(config.TableDonorYearSum, []string{"ID_NUM", "YR_CDE", "YEAR_TYPE"}, [][2]string{{"ID_NUM", "1"}, {"YR_CDE", "2024"}, {"YEAR_TYPE", "FSC"}}),
		config.TableDonorCampSum: tableOf(config.TableDonorCampSum, []string{"ID_NUM", "CAMPAIGN_CDE", "YR_CDE", "YEAR_TYPE"}, [][2]string{{"ID_NUM", "1"}, {"CAMPAIGN_CDE", "ANN"}, {"YR_CDE", "2024"}, {"YEAR_TYPE", "FSC"}}),
	}

	schema := transformer.Transform(tables, runLog)

	want := []string{
		"DimConstituent", "DimAlumni", "DimCampaign", "DimGiftCategory",
		"DimSolicitation", "DimYear", "FactGiftTransaction",
		"FactDonorYearSummary", "FactDonorCampaignSummary",
	}
	require.Len(t, schema.Tables, len(want))
	for i, name := range want {
		assert.Equal(t, name, schema.Tables[i].Name)
	}
}

func tableOf(name string, cols []string, cells [][2]string) *models.Table {
	t := models.NewTable(name, cols)
	row := make(models.Row, len(cells))
	for _, kv := range cells {
		row[kv[0]] = models.StringValue(kv[1])
	}
	t.Rows = []models.Row{row}
	return t
}
