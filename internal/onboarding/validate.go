package onboarding

// requiredFields lists, in display order, the fields each gated step needs
// before a forward move. Steps without an entry have no gate.
var requiredFields = map[Step][]Field{
	Personal: {FieldDateOfBirth, FieldPhone, FieldNationality, FieldOccupation},
	Address:  {FieldStreet, FieldCity, FieldState, FieldPostalCode, FieldCountry},
	Document: {FieldDocumentType, FieldDocumentNumber, FieldDocumentFile, FieldSelfieFile},
}

// RequiredFields returns the fields that must be present to leave step
// forward. The result is a fresh slice.
func RequiredFields(step Step) []Field {
	req := requiredFields[step]
	out := make([]Field, len(req))
	copy(out, req)
	return out
}

// Missing returns the required fields of step that are not yet present in
// s, in display order. Presence is the only check; values are not
// inspected for format.
func Missing(step Step, s Session) []Field {
	var missing []Field
	for _, f := range requiredFields[step] {
		if s.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// StepComplete reports whether every required field of step is present in s.
// Welcome, Review and Complete are always complete.
func StepComplete(step Step, s Session) bool {
	return len(Missing(step, s)) == 0
}
