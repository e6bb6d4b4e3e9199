package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake-engine/internal/model"
)

func TestApplicantFromBackendNil(t *testing.T) {
	doc := ApplicantFromBackend(nil)
	assert.Empty(t, doc)
}

func TestApplicantFromBackendDefaults(t *testing.T) {
	doc := ApplicantFromBackend(map[string]any{})

	for _, f := range nameFields {
		require.Contains(t, doc, f)
		assert.Equal(t, "", doc[f], f)
	}
	assert.Equal(t, false, doc["is_consultant"])

	contact := doc["contact"].(map[string]any)
	assert.Equal(t, "", contact["email"])
	assert.Equal(t, "", contact["address"])

	emp := doc["employment"].(map[string]any)
	assert.Equal(t, "", emp["status"])
	assert.Equal(t, "", emp["gross_monthly_salary"])

	assert.Equal(t, "", doc["date_of_birth"])
	assert.Equal(t, []any{}, doc["household_members"])
}

func TestApplicantFromBackendSalaryRename(t *testing.T) {
	doc := ApplicantFromBackend(map[string]any{
		"current_employment": map[string]any{
			"monthly_salary": float64(5000),
			"other_income":   "250",
		},
	})

	emp := doc["employment"].(map[string]any)
	assert.Equal(t, "5000", emp["gross_monthly_salary"])
	assert.Equal(t, "250", emp["additional_income"])
}

func TestApplicantFromBackendSalaryRenamePrefersNewName(t *testing.T) {
	doc := ApplicantFromBackend(map[string]any{
		"current_employment": map[string]any{
			"gross_monthly_salary": "6200",
			"monthly_salary":       "5000",
		},
	})

	emp := doc["employment"].(map[string]any)
	assert.Equal(t, "6200", emp["gross_monthly_salary"])
}

func TestApplicantFromBackendDOBTruncation(t *testing.T) {
	doc := ApplicantFromBackend(map[string]any{
		"demographics_information": map[string]any{
			"dob":            "1980-04-02T00:00:00.000Z",
			"marital_status": "Married",
		},
	})

	assert.Equal(t, "1980-04-02", doc["date_of_birth"])
	assert.Equal(t, "Married", doc["marital_status"])
}

func TestApplicantFromBackendHouseholdMembersOrder(t *testing.T) {
	doc := ApplicantFromBackend(map[string]any{
		"household_members": []any{
			map[string]any{"first_name": "Ada", "relationship": "Daughter"},
			map[string]any{"first_name": "Ben", "relationship": "Son"},
		},
	})

	members := doc["household_members"].([]any)
	require.Len(t, members, 2)
	assert.Equal(t, "Ada", members[0].(map[string]any)["first_name"])
	assert.Equal(t, "Ben", members[1].(map[string]any)["first_name"])
	// Unset fields are still present with defaults.
	assert.Equal(t, "", members[0].(map[string]any)["ssn"])
}

func TestClientFromBackendNil(t *testing.T) {
	doc := ClientFromBackend(nil)

	assert.Equal(t, "", doc["client_id"])
	assert.Equal(t, model.StatusActive, doc["status"])
	assert.Equal(t, []any{}, doc["liabilities"])

	ap := doc["applicant"].(map[string]any)
	assert.Equal(t, "", ap["first_name"])

	co := doc["coapplicant"].(map[string]any)
	assert.Equal(t, false, co["include_coapplicant"])

	vc := doc["vehicle_coverage"].(map[string]any)
	assert.Equal(t, []any{}, vc["drivers"])
}

func TestClientFromBackendLiabilityTotalEsc(t *testing.T) {
	doc := ClientFromBackend(map[string]any{
		"_id":    "c-77",
		"status": "Pending",
		"liabilities": []any{
			map[string]any{"debt_name": "Rental", "taxes": "120", "hoi": "30"},
		},
	})

	assert.Equal(t, "c-77", doc["client_id"])
	assert.Equal(t, "Pending", doc["status"])

	liabs := doc["liabilities"].([]any)
	require.Len(t, liabs, 1)
	assert.Equal(t, "150", liabs[0].(map[string]any)["total_esc"])
}
