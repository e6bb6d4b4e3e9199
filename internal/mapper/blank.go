package mapper

import (
	"strconv"

	"intake-engine/internal/formdoc"
)

// blankValue reports whether a single field value counts as "no data": nil,
// the empty string, or an unchecked flag.
func blankValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	default:
		return false
	}
}

func blankOverFields(row map[string]any, fields []string) bool {
	for _, f := range fields {
		if !blankValue(row[f]) {
			return false
		}
	}
	return true
}

// IsBlankHouseholdMember reports whether every field of a household member row
// is blank. Such rows were created by the add-member action and never touched;
// they are dropped from outbound payloads.
func IsBlankHouseholdMember(row map[string]any) bool {
	return blankOverFields(row, householdMemberFields)
}

// IsBlankLiability ignores total_esc: it is derived and defaults to "0", which
// must not keep an untouched row alive.
func IsBlankLiability(row map[string]any) bool {
	return blankOverFields(row, liabilityFields)
}

// IsBlankDriver reports whether every field of a driver row is blank.
func IsBlankDriver(row map[string]any) bool {
	return blankOverFields(row, driverFields)
}

// TotalEsc derives the escrow total from the taxes and hoi fields, rendered
// the way the form shows it: Number(taxes||0) + Number(hoi||0) as a decimal
// string.
func TotalEsc(taxes, hoi any) string {
	return strconv.FormatFloat(formdoc.Num(taxes)+formdoc.Num(hoi), 'f', -1, 64)
}
