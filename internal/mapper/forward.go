package mapper

import (
	"strconv"

	"intake-engine/internal/formdoc"
	"intake-engine/internal/model"
)

func subObject(rec map[string]any, key string) map[string]any {
	m, _ := rec[key].(map[string]any)
	return m
}

// stringOf renders a backend scalar the way a form input holds it. Numbers
// arrive as float64 from the JSON decoder.
func stringOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

func strField(m map[string]any, key string) string {
	return stringOf(m[key])
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func groupFromBackend(src map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f] = strField(src, f)
	}
	return out
}

func sliceOfGroups(raw any, fields []string) []any {
	out := []any{}
	rows, _ := raw.([]any)
	for _, r := range rows {
		row, _ := r.(map[string]any)
		out = append(out, groupFromBackend(row, fields))
	}
	return out
}

// truncateDate keeps the date-only portion of an ISO timestamp.
func truncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// ApplicantFromBackend maps one backend applicant or co-applicant record into
// the UI person shape. A nil record maps to an empty object. Otherwise every
// known field is present with an empty-string, empty-array, or false default,
// so form inputs always have a controlled value.
func ApplicantFromBackend(rec map[string]any) formdoc.Doc {
	if rec == nil {
		return formdoc.Doc{}
	}

	doc := formdoc.Doc{"_id": strField(rec, "_id")}

	ni := subObject(rec, "name_information")
	for _, f := range nameFields {
		doc[f] = strField(ni, f)
	}
	doc["is_consultant"] = boolField(ni, "is_consultant")

	doc["contact"] = groupFromBackend(subObject(rec, "current_address"), contactFields)
	doc["previous_address"] = groupFromBackend(subObject(rec, "previous_address"), previousAddressFields)

	// Legacy records carry monthly_salary / other_income; newer ones already
	// use the UI names.
	ce := subObject(rec, "current_employment")
	emp := groupFromBackend(ce, employmentFields)
	if emp["gross_monthly_salary"] == "" {
		emp["gross_monthly_salary"] = strField(ce, "monthly_salary")
	}
	if emp["additional_income"] == "" {
		emp["additional_income"] = strField(ce, "other_income")
	}
	doc["employment"] = emp
	doc["previous_employment"] = groupFromBackend(subObject(rec, "previous_employment"), previousEmploymentFields)

	demo := subObject(rec, "demographics_information")
	for _, f := range demographicFields {
		doc[f] = strField(demo, f)
	}
	doc["date_of_birth"] = truncateDate(strField(demo, "dob"))

	members := []any{}
	rows, _ := rec["household_members"].([]any)
	for _, r := range rows {
		row, _ := r.(map[string]any)
		members = append(members, groupFromBackend(row, householdMemberFields))
	}
	doc["household_members"] = members

	return doc
}

// NewPersonDoc returns the fully defaulted UI person used in create mode.
func NewPersonDoc() formdoc.Doc {
	return ApplicantFromBackend(map[string]any{})
}

func personOrDefault(rec map[string]any) formdoc.Doc {
	if rec == nil {
		return NewPersonDoc()
	}
	return ApplicantFromBackend(rec)
}

// ClientFromBackend assembles the whole form document from a backend client
// record. A nil or empty record yields the blank create-mode document; absent
// sub-objects are treated as no data, never as a fault.
func ClientFromBackend(rec map[string]any) formdoc.Doc {
	doc := formdoc.Doc{"client_id": strField(rec, "_id")}
	for _, f := range rootFields {
		doc[f] = strField(rec, f)
	}
	if doc["status"] == "" {
		doc["status"] = model.StatusActive
	}

	doc["applicant"] = personOrDefault(subObject(rec, "applicant"))

	co := subObject(rec, "coapplicant")
	coDoc := personOrDefault(co)
	coDoc["include_coapplicant"] = boolField(co, "include_coapplicant")
	doc["coapplicant"] = coDoc

	liabs := []any{}
	rows, _ := rec["liabilities"].([]any)
	for _, r := range rows {
		row, _ := r.(map[string]any)
		out := groupFromBackend(row, liabilityFields)
		out["will_be_paid_off"] = boolField(row, "will_be_paid_off")
		out["total_esc"] = TotalEsc(out["taxes"], out["hoi"])
		liabs = append(liabs, out)
	}
	doc["liabilities"] = liabs

	for _, name := range subRecordOrder {
		sub := groupFromBackend(subObject(rec, name), subRecordFields[name])
		if name == "vehicle_coverage" {
			src := subObject(rec, name)
			sub["vehicles"] = sliceOfGroups(src["vehicles"], vehicleFields)
			sub["drivers"] = sliceOfGroups(src["drivers"], driverFields)
		}
		doc[name] = sub
	}

	return doc
}

// NewFormDoc returns the blank create-mode document.
func NewFormDoc() formdoc.Doc {
	return ClientFromBackend(nil)
}
