package onboarding

import "strings"

// Choice is one selectable value of a catalog field.
type Choice struct {
	Code  string
	Label string
}

// Document type codes.
const (
	DocumentPassport       = "passport"
	DocumentDriversLicense = "drivers_license"
	DocumentNationalID     = "national_id"
)

// Nationalities lists the nationality codes offered to the user.
var Nationalities = []Choice{
	{Code: "us", Label: "United States"},
	{Code: "uk", Label: "United Kingdom"},
	{Code: "ca", Label: "Canada"},
	{Code: "au", Label: "Australia"},
	{Code: "other", Label: "Other"},
}

// Countries lists the country codes offered for the residential address.
var Countries = []Choice{
	{Code: "us", Label: "United States"},
	{Code: "uk", Label: "United Kingdom"},
	{Code: "ca", Label: "Canada"},
	{Code: "au", Label: "Australia"},
	{Code: "other", Label: "Other"},
}

// DocumentTypes lists the accepted identity documents.
var DocumentTypes = []Choice{
	{Code: DocumentPassport, Label: "Passport"},
	{Code: DocumentDriversLicense, Label: "Driver's License"},
	{Code: DocumentNationalID, Label: "National ID Card"},
}

// phoneRegions maps nationality codes to ISO 3166 regions for phone
// display. "uk" is the catalog code; the ISO region is GB.
var phoneRegions = map[string]string{
	"us": "US",
	"uk": "GB",
	"ca": "CA",
	"au": "AU",
}

// ChoiceLabel returns the label for code in choices. Unknown codes fall
// back to the code with underscores replaced by spaces.
func ChoiceLabel(choices []Choice, code string) string {
	for _, c := range choices {
		if c.Code == code {
			return c.Label
		}
	}
	return strings.ReplaceAll(code, "_", " ")
}
