package onboarding

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ReviewDateLayout formats the date of birth on the review step.
const ReviewDateLayout = "January 2, 2006"

// Row is one line of a summary group. An empty Label renders Value alone.
type Row struct {
	Label string
	Value string
}

// Group is a titled block of summary rows.
type Group struct {
	Title string
	Rows  []Row
}

// Summary is the read-only projection shown on the review step.
type Summary struct {
	Groups []Group
}

// NewSummary projects the session and the host user into a summary. A nil user
// yields empty name and email rows. Neither argument is modified.
func NewSummary(user *User, s Session) Summary {
	var name, email string
	if user != nil {
		name, email = user.Name, user.Email
	}

	dob := "N/A"
	if s.HasDateOfBirth() {
		dob = s.DateOfBirth.Format(ReviewDateLayout)
	}

	locality := strings.TrimSpace(s.City + ", " + s.State + " " + s.PostalCode)
	if s.City == "" && s.State == "" && s.PostalCode == "" {
		locality = ""
	}

	return Summary{Groups: []Group{
		{
			Title: "Personal Information",
			Rows: []Row{
				{Label: "Name", Value: name},
				{Label: "Email", Value: email},
				{Label: "Date of Birth", Value: dob},
				{Label: "Phone", Value: DisplayPhone(s.Phone, s.Nationality)},
				{Label: "Nationality", Value: choiceOrEmpty(Nationalities, s.Nationality)},
				{Label: "Occupation", Value: s.Occupation},
			},
		},
		{
			Title: "Address",
			Rows: []Row{
				{Value: s.Street},
				{Value: locality},
				{Value: choiceOrEmpty(Countries, s.Country)},
			},
		},
		{
			Title: "Documents",
			Rows: []Row{
				{Label: "Document Type", Value: choiceOrEmpty(DocumentTypes, s.DocumentType)},
				{Label: "Document Number", Value: s.DocumentNumber},
				{Label: "ID Document", Value: uploaded(s.DocumentFile)},
				{Label: "Selfie", Value: uploaded(s.SelfieFile)},
			},
		},
	}}
}

// Group returns the group with the given title.
func (s Summary) Group(title string) (Group, bool) {
	for _, g := range s.Groups {
		if g.Title == title {
			return g, true
		}
	}
	return Group{}, false
}

// Value returns the value of the labelled row in g.
func (g Group) Value(label string) string {
	for _, r := range g.Rows {
		if r.Label == label {
			return r.Value
		}
	}
	return ""
}

// String renders the summary as plain text.
func (s Summary) String() string {
	var b strings.Builder
	for i, g := range s.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.Title + "\n")
		for _, r := range g.Rows {
			if r.Label == "" {
				b.WriteString("  " + r.Value + "\n")
				continue
			}
			b.WriteString("  " + r.Label + ": " + r.Value + "\n")
		}
	}
	return b.String()
}

// DisplayPhone formats phone in international notation when it parses as a
// valid number for the region implied by nationality. Anything else is
// returned unchanged; this is presentation only and never rejects input.
func DisplayPhone(phone, nationality string) string {
	if strings.TrimSpace(phone) == "" {
		return phone
	}
	region := phoneRegions[nationality]
	if region == "" {
		region = "ZZ"
	}
	num, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

func choiceOrEmpty(choices []Choice, code string) string {
	if code == "" {
		return ""
	}
	return ChoiceLabel(choices, code)
}

func uploaded(name string) string {
	if name == "" {
		return "Not uploaded"
	}
	return "✓ Uploaded (" + name + ")"
}
