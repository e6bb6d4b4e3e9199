// Package fixtures generates filled-in client documents for tests. The data
// is random but structurally what a consultant would type into the form.
package fixtures

import (
	"strconv"

	"github.com/bxcodec/faker/v3"

	"intake-engine/internal/formdoc"
	"intake-engine/internal/mapper"
	"intake-engine/internal/model"
)

type personSeed struct {
	FirstName string `faker:"first_name"`
	LastName  string `faker:"last_name"`
	Email     string `faker:"email"`
}

func fillPerson(p map[string]any) {
	var seed personSeed
	_ = faker.FakeData(&seed)
	p["first_name"] = seed.FirstName
	p["last_name"] = seed.LastName
	p["date_of_birth"] = "1980-04-02"
	contact := p["contact"].(map[string]any)
	contact["email"] = seed.Email
	contact["address"] = "12 Main St"
	contact["city"] = "Springfield"
	contact["state"] = "IL"
	contact["zip"] = "62704"
	emp := p["employment"].(map[string]any)
	emp["status"] = "Employed"
	emp["employer_name"] = faker.Name()
	salary, _ := faker.RandomInt(3000, 9000, 1)
	emp["gross_monthly_salary"] = strconv.Itoa(salary[0])
}

// DummyClientDoc returns a UI document filled far enough to pass every
// section validator and produce non-trivial payloads.
func DummyClientDoc() formdoc.Doc {
	doc := mapper.NewFormDoc()
	doc["entry_date"] = "2026-01-15"
	doc["status"] = model.StatusActive
	doc["consultant_name"] = faker.Name()

	fillPerson(doc["applicant"].(map[string]any))

	var memberSeed personSeed
	_ = faker.FakeData(&memberSeed)
	member := model.NewHouseholdMember()
	member["first_name"] = memberSeed.FirstName
	member["relationship"] = "Daughter"

	liab := model.NewLiability()
	liab["debtor"] = model.DebtorApplicant
	liab["debt_name"] = "Auto loan"
	balance, _ := faker.RandomInt(5000, 25000, 1)
	liab["balance"] = strconv.Itoa(balance[0])
	liab["taxes"] = "120"
	liab["hoi"] = "30"
	liab["total_esc"] = mapper.TotalEsc(liab["taxes"], liab["hoi"])

	doc["applicant"].(map[string]any)["household_members"] = []any{member}
	doc["liabilities"] = []any{liab}
	return doc
}

// DummyBackendClient returns a backend-shaped record, the way the CRM hands
// records to the forward mapper.
func DummyBackendClient(id string) map[string]any {
	var seed personSeed
	_ = faker.FakeData(&seed)
	return map[string]any{
		"_id":    id,
		"status": model.StatusActive,
		"applicant": map[string]any{
			"_id": "a-" + id,
			"name_information": map[string]any{
				"first_name": seed.FirstName,
				"last_name":  seed.LastName,
			},
			"current_address": map[string]any{
				"email": seed.Email,
				"city":  "Springfield",
			},
			"demographics_information": map[string]any{
				"dob": "1980-04-02T00:00:00.000Z",
			},
		},
	}
}
