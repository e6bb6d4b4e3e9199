package mapper

// Closed field tables for every section. The forward direction uses them to
// guarantee that every known field is present on the UI document, and the
// reverse direction uses them to keep unknown keys out of outbound payloads.
// Adding a field to a section means adding it here, in one place.

var nameFields = []string{
	"title",
	"first_name",
	"middle_initial",
	"last_name",
	"suffix",
	"maiden_name",
}

var contactFields = []string{
	"address",
	"city",
	"state",
	"zip",
	"county",
	"home_phone",
	"work_phone",
	"cell_phone",
	"other_phone",
	"email",
	"fax",
	"years_at_address",
	"months_at_address",
}

var previousAddressFields = []string{
	"address",
	"city",
	"state",
	"zip",
	"county",
	"years_at_address",
	"months_at_address",
}

var employmentFields = []string{
	"status",
	"employer_name",
	"employer_address",
	"employer_city",
	"employer_state",
	"employer_zip",
	"position",
	"gross_monthly_salary",
	"additional_income",
	"start_date",
	"supervisor",
	"supervisor_phone",
}

var previousEmploymentFields = []string{
	"status",
	"employer_name",
	"employer_address",
	"employer_city",
	"employer_state",
	"employer_zip",
	"position",
	"gross_monthly_salary",
	"additional_income",
	"start_date",
	"end_date",
	"supervisor",
}

// Flat demographic fields on the UI person. The backend groups them under
// demographics_information and names the birth date "dob".
var demographicFields = []string{
	"date_of_birth",
	"birth_place",
	"marital_status",
	"race",
	"anniversary_date",
	"spouse_name",
	"spouse_occupation",
	"number_of_dependents",
}

var householdMemberFields = []string{
	"first_name",
	"middle_name",
	"last_name",
	"relationship",
	"dob",
	"age",
	"sex",
	"marital_status",
	"ssn",
}

// total_esc is excluded on purpose: it is derived from taxes and hoi and must
// not make an otherwise blank row look populated.
var liabilityFields = []string{
	"debtor",
	"debt_name",
	"balance",
	"payment",
	"will_be_paid_off",
	"property_address",
	"property_value",
	"gross_rent",
	"escrow",
	"taxes",
	"hoi",
}

var vehicleFields = []string{
	"year",
	"make",
	"model",
	"vin",
	"usage",
}

var driverFields = []string{
	"first_name",
	"last_name",
	"dob",
	"ssn",
	"driving_status",
	"license_number",
}

var mortgageFields = []string{"lender", "loan_amount", "interest_rate", "term_years", "loan_type", "purpose"}

var underwritingFields = []string{"credit_score", "ltv", "dti", "decision", "notes"}

var loanStatusFields = []string{"stage", "submitted_date", "approved_date", "closing_date", "notes"}

var incomeProtectionFields = []string{"provider", "monthly_benefit", "premium", "elimination_period", "term_years"}

var vehicleCoverageFields = []string{"carrier", "policy_number", "premium"}

var retirementFields = []string{"provider", "account_type", "balance", "monthly_contribution", "employer_match"}

var homeownersFields = []string{"carrier", "policy_number", "coverage_amount", "premium", "deductible"}

var rentersFields = []string{"carrier", "policy_number", "personal_property", "premium", "deductible"}

// Root-level scalar fields of the client record.
var rootFields = []string{"entry_date", "status", "payoff_amount", "consultant_name", "processor_name"}

// Sub-records carried on the whole-record update, in payload order.
var subRecordFields = map[string][]string{
	"mortgage":          mortgageFields,
	"underwriting":      underwritingFields,
	"loan_status":       loanStatusFields,
	"income_protection": incomeProtectionFields,
	"vehicle_coverage":  vehicleCoverageFields,
	"retirement":        retirementFields,
	"homeowners":        homeownersFields,
	"renters":           rentersFields,
}

var subRecordOrder = []string{
	"mortgage",
	"underwriting",
	"loan_status",
	"income_protection",
	"vehicle_coverage",
	"retirement",
	"homeowners",
	"renters",
}
