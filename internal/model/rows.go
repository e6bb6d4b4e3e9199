package model

// NewHouseholdMember returns an all-blank household member row. Blank rows are
// legal in the document; they are dropped from outbound payloads at save time.
func NewHouseholdMember() map[string]any {
	return map[string]any{
		"first_name":     "",
		"middle_name":    "",
		"last_name":      "",
		"relationship":   "",
		"dob":            "",
		"age":            "",
		"sex":            "",
		"marital_status": "",
		"ssn":            "",
	}
}

// NewLiability returns an all-blank liability row. total_esc is derived from
// taxes and hoi and is never set directly.
func NewLiability() map[string]any {
	return map[string]any{
		"debtor":           "",
		"debt_name":        "",
		"balance":          "",
		"payment":          "",
		"will_be_paid_off": false,
		"property_address": "",
		"property_value":   "",
		"gross_rent":       "",
		"escrow":           "",
		"taxes":            "",
		"hoi":              "",
		"total_esc":        "0",
	}
}

// NewDriver returns an all-blank driver row for the vehicle coverage section.
func NewDriver() map[string]any {
	return map[string]any{
		"first_name":     "",
		"last_name":      "",
		"dob":            "",
		"ssn":            "",
		"driving_status": "",
		"license_number": "",
	}
}
