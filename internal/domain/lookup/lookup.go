// Package lookup holds the static code-to-label tables applied by the read
// models. A code that is not in a table is returned unchanged as its own
// label.
package lookup

var provinces = map[string]string{
	"AB": "Alberta",
	"BC": "British Columbia",
	"MB": "Manitoba",
	"NB": "New Brunswick",
	"NL": "Newfoundland and Labrador",
	"NS": "Nova Scotia",
	"NT": "Northwest Territories",
	"NU": "Nunavut",
	"ON": "Ontario",
	"PE": "Prince Edward Island",
	"QC": "Quebec",
	"SK": "Saskatchewan",
	"YT": "Yukon",
}

// Canadian bank institution numbers.
var banks = map[string]string{
	"001": "Bank of Montreal",
	"002": "Scotiabank",
	"003": "RBC Royal Bank",
	"004": "Toronto-Dominion Bank",
	"006": "National Bank",
	"010": "CIBC Bank",
	"016": "HSBC Bank",
	"030": "Canadian Western Bank",
	"039": "Laurentian Bank of Canada",
	"219": "Alberta Treasury Branch",
	"310": "First National Bank",
	"320": "PC Financial",
	"540": "Manulife Bank",
	"568": "Peace Hills Trust",
	"614": "Tangerine Bank",
	"621": "KOHO Bank",
	"809": "Credit Union British Columbia",
	"815": "Desjardins Quebec",
	"828": "Credit Union Ontario",
	"829": "Desjardins Ontario",
	"837": "Credit Union Meridian",
	"839": "Credit Union Heritage Brunswick",
	"849": "Brunswick Credit Union",
	"879": "Credit Union Manitoba",
	"899": "Credit Union Alberta",
	"000": "Other",
}

var incomeSources = map[string]string{
	"employed":   "Employed",
	"saaq":       "SAAQ",
	"CSST":       "CSST",
	"pension":    "Pension",
	"invalidity": "Invalidity",
	"insurance":  "Employment Insurance",
	"rqap":       "RQAP",
}

var payFrequencies = map[string]string{
	"1month":    "Once a month",
	"2weeks":    "Every 2 weeks",
	"bimonthly": "Twice a month",
	"1week":     "Every week",
}

func label(m map[string]string, code string) string {
	if l, ok := m[code]; ok {
		return l
	}
	return code
}

func ProvinceName(code string) string     { return label(provinces, code) }
func BankName(code string) string         { return label(banks, code) }
func IncomeSourceName(code string) string { return label(incomeSources, code) }
func PayFrequencyName(code string) string { return label(payFrequencies, code) }
