package config

// Logical source table names. Builders look sources up under these names.
const (
	TableAlumniMaster = "alumni_master"
	TableCampaign     = "campaign"
	TableDonorCampSum = "donor_camp_sum"
	TableDonorMaster  = "donor_master"
	TableDonorYearSum = "donor_year_sum"
	TableGiftCategory = "gift_category"
	TableGiftMaster   = "gift_master"
	TableGiftTran     = "gift_tran"
	TableNameMaster   = "name_master"
	TableSolicitDef   = "solicit_def"
)

// SourceTable binds a logical table name to its extract filename.
type SourceTable struct {
	Name string
	File string
}

// SourceTables lists the ten raw extracts in load order.
var SourceTables = []SourceTable{
	{TableAlumniMaster, "ALUMNI_MASTER.csv"},
	{TableCampaign, "CAMPAIGN.csv"},
	{TableDonorCampSum, "DONOR_CAMP_SUM.csv"},
	{TableDonorMaster, "DONOR_MASTER.csv"},
	{TableDonorYearSum, "DONOR_YEAR_SUM.csv"},
	{TableGiftCategory, "GIFT_CATEGORY.csv"},
	{TableGiftMaster, "GIFT_MASTER.csv"},
	{TableGiftTran, "GIFT_TRAN.csv"},
	{TableNameMaster, "NAME_MASTER.csv"},
	{TableSolicitDef, "SOLICIT_DEF.csv"},
}

// MetadataColumns are technical audit columns dropped from every table.
var MetadataColumns = []string{"USER_NAME", "JOB_NAME", "JOB_TIME", "APPROWVERSION"}

// IDCodeColumns are identifier/code columns that always stay strings, even
// when every value looks numeric. Leading zeros must survive the pipeline.
var IDCodeColumns = []string{
	"ID_NUM",
	"DONOR_ID",
	"CAMPAIGN_CDE",
	"SOLICIT_CDE",
	"GIFT_GROUP_NUM",
	"GIFT_NUM",
	"GIFT_TRAN_NUM",
	"APPID",
	"CAT_COMP_1",
	"CAT_COMP_2",
}

// NaturalKeys declares the dedup key of each source table. Tables without an
// entry are never deduplicated.
var NaturalKeys = map[string][]string{
	TableAlumniMaster: {"ID_NUM"},
	TableCampaign:     {"CAMPAIGN_CDE"},
	TableDonorCampSum: {"ID_NUM", "CAMPAIGN_CDE", "YR_CDE", "YEAR_TYPE"},
	TableDonorMaster:  {"ID_NUM"},
	TableDonorYearSum: {"ID_NUM", "YR_CDE", "YEAR_TYPE"},
	TableGiftCategory: {"APPID", "CAT_COMP_1", "CAT_COMP_2"},
	TableGiftMaster:   {"GIFT_GROUP_NUM", "GIFT_NUM"},
	TableGiftTran:     {"GIFT_GROUP_NUM", "GIFT_NUM", "GIFT_TRAN_NUM"},
	TableNameMaster:   {"ID_NUM"},
	TableSolicitDef:   {"SOLICIT_CDE"},
}

// ExplicitDateColumns are known date fields parsed regardless of the
// name-pattern rule.
var ExplicitDateColumns = []string{
	"GIFT_DTE",
	"MATURITY_DTE",
	"FIRST_GIFT_DTE",
	"LAST_GIFT_DTE",
	"LARGEST_GIFT_DTE",
	"SMALLEST_GIFT_DTE",
	"CAMP_START_DATE",
	"CAMP_END_DATE",
	"VALID_UNTIL_DTE",
	"ACK_DATE",
	"EXPIRE_DTE",
	"LAST_UPDATE_DTE",
	"LAST_VISIT_DTE",
	"NEXT_VISIT_DTE",
	"REASON_DTE",
	"UDEF_DTE_1",
	"UDEF_DTE_2",
	"UDEF_DTE_3",
	"USER_DEF_DTE_1",
	"USER_DEF_DTE_2",
	"USER_DEF_DTE_3",
}
