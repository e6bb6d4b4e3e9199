package mapper

import (
	"intake-engine/internal/formdoc"
	"intake-engine/internal/model"
)

// PersonPayload holds the outbound bodies for one party. BasicInfo, Address,
// Employment and Demographics are the per-subsection update bodies used in
// edit mode; Combined is the same data in one object for the create payload.
type PersonPayload struct {
	ID           string
	BasicInfo    map[string]any
	Address      map[string]any
	Employment   map[string]any
	Demographics map[string]any
	Combined     map[string]any
	Collapsed    bool
}

// SavePayload is the reverse-mapped output for one save. Combined is set in
// create mode only; Record is the whole-record update body used in edit mode.
type SavePayload struct {
	Combined           map[string]any
	Record             map[string]any
	Applicant          PersonPayload
	CoApplicant        PersonPayload
	IncludeCoApplicant bool
}

func filterRows(raw any, fields []string, blank func(map[string]any) bool) []any {
	out := []any{}
	rows, _ := raw.([]any)
	for _, r := range rows {
		row, _ := r.(map[string]any)
		if blank(row) {
			continue
		}
		out = append(out, groupFromBackend(row, fields))
	}
	return out
}

func buildPerson(p map[string]any) PersonPayload {
	ni := make(map[string]any, len(nameFields)+1)
	for _, f := range nameFields {
		v := stringOf(p[f])
		if f == "middle_initial" && len(v) > 1 {
			v = v[:1]
		}
		ni[f] = v
	}
	ni["is_consultant"] = boolField(p, "is_consultant")

	basic := map[string]any{"name_information": ni}
	if members := filterRows(p["household_members"], householdMemberFields, IsBlankHouseholdMember); len(members) > 0 {
		basic["household_members"] = members
	}

	addr := map[string]any{
		"current_address":  groupFromBackend(subObject(p, "contact"), contactFields),
		"previous_address": groupFromBackend(subObject(p, "previous_address"), previousAddressFields),
	}

	empl := map[string]any{
		"current_employment":  groupFromBackend(subObject(p, "employment"), employmentFields),
		"previous_employment": groupFromBackend(subObject(p, "previous_employment"), previousEmploymentFields),
	}

	demo := map[string]any{"dob": stringOf(p["date_of_birth"])}
	for _, f := range demographicFields {
		if f == "date_of_birth" {
			continue
		}
		demo[f] = stringOf(p[f])
	}
	demos := map[string]any{"demographics_information": demo}

	combined := map[string]any{}
	for _, group := range []map[string]any{basic, addr, empl, demos} {
		for k, v := range group {
			combined[k] = v
		}
	}

	return PersonPayload{
		ID:           strField(p, "_id"),
		BasicInfo:    basic,
		Address:      addr,
		Employment:   empl,
		Demographics: demos,
		Combined:     combined,
	}
}

// CollapsedCoApplicant is the exact body sent for a co-applicant whose
// include_coapplicant flag is false, regardless of what is in memory.
func CollapsedCoApplicant() map[string]any {
	return map[string]any{"is_consultant": false, "include_coapplicant": false}
}

func buildLiabilities(raw any) []any {
	out := []any{}
	rows, _ := raw.([]any)
	for _, r := range rows {
		row, _ := r.(map[string]any)
		if IsBlankLiability(row) {
			continue
		}
		kept := groupFromBackend(row, liabilityFields)
		kept["will_be_paid_off"] = boolField(row, "will_be_paid_off")
		kept["total_esc"] = TotalEsc(row["taxes"], row["hoi"])
		out = append(out, kept)
	}
	return out
}

// BuildSavePayload reverse-maps the form document into backend request bodies.
// Row lists with nothing but blank rows are omitted from the payload entirely:
// an absent key means "no data provided", which the backend treats differently
// from an explicitly empty list.
func BuildSavePayload(doc formdoc.Doc, mode model.Mode) SavePayload {
	sp := SavePayload{Applicant: buildPerson(subObject(doc, "applicant"))}

	sp.IncludeCoApplicant = formdoc.Bool(doc, "coapplicant", "include_coapplicant")
	if sp.IncludeCoApplicant {
		co := buildPerson(subObject(doc, "coapplicant"))
		co.Combined["include_coapplicant"] = true
		sp.CoApplicant = co
	} else {
		sp.CoApplicant = PersonPayload{Collapsed: true, Combined: CollapsedCoApplicant()}
	}

	record := map[string]any{}
	for _, f := range rootFields {
		record[f] = stringOf(doc[f])
	}
	if liabs := buildLiabilities(doc["liabilities"]); len(liabs) > 0 {
		record["liabilities"] = liabs
	}
	for _, name := range subRecordOrder {
		src := subObject(doc, name)
		sub := groupFromBackend(src, subRecordFields[name])
		if name == "vehicle_coverage" {
			sub["vehicles"] = sliceOfGroups(src["vehicles"], vehicleFields)
			sub["drivers"] = sliceOfGroups(src["drivers"], driverFields)
		}
		record[name] = sub
	}
	sp.Record = record

	if mode == model.ModeCreate {
		combined := make(map[string]any, len(record)+2)
		for k, v := range record {
			combined[k] = v
		}
		combined["applicant"] = sp.Applicant.Combined
		combined["coapplicant"] = sp.CoApplicant.Combined
		sp.Combined = combined
	}

	return sp
}
