package onboarding

import (
	"path/filepath"
	"time"
)

// DateLayout is the layout used to exchange dates of birth as text.
const DateLayout = "2006-01-02"

// Field identifies one entry of the session.
type Field string

const (
	FieldDateOfBirth    Field = "date_of_birth"
	FieldPhone          Field = "phone"
	FieldNationality    Field = "nationality"
	FieldOccupation     Field = "occupation"
	FieldStreet         Field = "street"
	FieldCity           Field = "city"
	FieldState          Field = "state"
	FieldPostalCode     Field = "postal_code"
	FieldCountry        Field = "country"
	FieldDocumentType   Field = "document_type"
	FieldDocumentNumber Field = "document_number"
	FieldDocumentFile   Field = "document_file"
	FieldSelfieFile     Field = "selfie_file"
)

var fieldLabels = map[Field]string{
	FieldDateOfBirth:    "Date of Birth",
	FieldPhone:          "Phone Number",
	FieldNationality:    "Nationality",
	FieldOccupation:     "Occupation",
	FieldStreet:         "Street Address",
	FieldCity:           "City",
	FieldState:          "State / Province",
	FieldPostalCode:     "ZIP / Postal Code",
	FieldCountry:        "Country",
	FieldDocumentType:   "Document Type",
	FieldDocumentNumber: "Document Number",
	FieldDocumentFile:   "ID Document",
	FieldSelfieFile:     "Selfie",
}

// fieldOwner maps each field to the step whose page edits it.
var fieldOwner = map[Field]Step{
	FieldDateOfBirth:    Personal,
	FieldPhone:          Personal,
	FieldNationality:    Personal,
	FieldOccupation:     Personal,
	FieldStreet:         Address,
	FieldCity:           Address,
	FieldState:          Address,
	FieldPostalCode:     Address,
	FieldCountry:        Address,
	FieldDocumentType:   Document,
	FieldDocumentNumber: Document,
	FieldDocumentFile:   Document,
	FieldSelfieFile:     Document,
}

// Label returns the human-readable name of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Owner returns the step that edits f. ok is false for unknown fields.
func (f Field) Owner() (Step, bool) {
	s, ok := fieldOwner[f]
	return s, ok
}

// Session accumulates every field entered during onboarding.
//
// A zero DateOfBirth means the date has not been chosen. File fields hold
// display names only; file contents never enter the session.
type Session struct {
	DateOfBirth time.Time
	dobSet      bool
	Phone       string
	Nationality string
	Occupation  string

	Street     string
	City       string
	State      string
	PostalCode string
	Country    string

	DocumentType   string
	DocumentNumber string
	DocumentFile   string
	SelfieFile     string
}

// HasDateOfBirth reports whether a date of birth has been chosen. The zero
// time is a valid date once set.
func (s Session) HasDateOfBirth() bool {
	return s.dobSet
}

func (s *Session) SetDateOfBirth(t time.Time) { s.DateOfBirth, s.dobSet = t, true }
func (s *Session) ClearDateOfBirth()          { s.DateOfBirth, s.dobSet = time.Time{}, false }
func (s *Session) SetPhone(v string)          { s.Phone = v }
func (s *Session) SetNationality(v string)    { s.Nationality = v }
func (s *Session) SetOccupation(v string)     { s.Occupation = v }
func (s *Session) SetStreet(v string)         { s.Street = v }
func (s *Session) SetCity(v string)           { s.City = v }
func (s *Session) SetState(v string)          { s.State = v }
func (s *Session) SetPostalCode(v string)     { s.PostalCode = v }
func (s *Session) SetCountry(v string)        { s.Country = v }
func (s *Session) SetDocumentType(v string)   { s.DocumentType = v }
func (s *Session) SetDocumentNumber(v string) { s.DocumentNumber = v }

// SetDocumentFile records the chosen ID document. Only the base name of
// path is kept.
func (s *Session) SetDocumentFile(path string) { s.DocumentFile = displayName(path) }

// SetSelfieFile records the chosen selfie. Only the base name of path is kept.
func (s *Session) SetSelfieFile(path string) { s.SelfieFile = displayName(path) }

// Get returns the text value of f. The date of birth is formatted with
// DateLayout and is empty when unset.
func (s Session) Get(f Field) string {
	switch f {
	case FieldDateOfBirth:
		if !s.HasDateOfBirth() {
			return ""
		}
		return s.DateOfBirth.Format(DateLayout)
	case FieldPhone:
		return s.Phone
	case FieldNationality:
		return s.Nationality
	case FieldOccupation:
		return s.Occupation
	case FieldStreet:
		return s.Street
	case FieldCity:
		return s.City
	case FieldState:
		return s.State
	case FieldPostalCode:
		return s.PostalCode
	case FieldCountry:
		return s.Country
	case FieldDocumentType:
		return s.DocumentType
	case FieldDocumentNumber:
		return s.DocumentNumber
	case FieldDocumentFile:
		return s.DocumentFile
	case FieldSelfieFile:
		return s.SelfieFile
	}
	return ""
}

// setText routes a text value to the matching setter. The date of birth is
// not a text field and is rejected.
func (s *Session) setText(f Field, v string) bool {
	switch f {
	case FieldPhone:
		s.SetPhone(v)
	case FieldNationality:
		s.SetNationality(v)
	case FieldOccupation:
		s.SetOccupation(v)
	case FieldStreet:
		s.SetStreet(v)
	case FieldCity:
		s.SetCity(v)
	case FieldState:
		s.SetState(v)
	case FieldPostalCode:
		s.SetPostalCode(v)
	case FieldCountry:
		s.SetCountry(v)
	case FieldDocumentType:
		s.SetDocumentType(v)
	case FieldDocumentNumber:
		s.SetDocumentNumber(v)
	case FieldDocumentFile:
		s.SetDocumentFile(v)
	case FieldSelfieFile:
		s.SetSelfieFile(v)
	default:
		return false
	}
	return true
}

func displayName(path string) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
