package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake-engine/internal/formdoc"
	"intake-engine/internal/mapper"
	"intake-engine/internal/model"
)

var refNow = time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

func validDoc() formdoc.Doc {
	doc := mapper.NewFormDoc()
	ap := doc["applicant"].(map[string]any)
	ap["first_name"] = "Sam"
	ap["last_name"] = "Rivera"
	return doc
}

func TestApplicantRequiredNames(t *testing.T) {
	doc := mapper.NewFormDoc()

	errs := Applicant(doc)

	require.Len(t, errs, 2)
	assert.Equal(t, "applicant.first_name", errs[0].Path)
	assert.Equal(t, "applicant.last_name", errs[1].Path)
}

func TestApplicantFieldFormats(t *testing.T) {
	doc := validDoc()
	ap := doc["applicant"].(map[string]any)
	ap["contact"].(map[string]any)["email"] = "not-an-email"
	ap["contact"].(map[string]any)["zip"] = "123"
	ap["date_of_birth"] = "04/02/1980"

	errs := Applicant(doc)

	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "applicant.contact.email")
	assert.Contains(t, paths, "applicant.contact.zip")
	assert.Contains(t, paths, "applicant.date_of_birth")
}

func TestCoApplicantSkippedWhenExcluded(t *testing.T) {
	doc := validDoc()
	// Co-applicant is entirely blank but the flag is off, so nothing runs.
	assert.Empty(t, CoApplicant(doc))
}

func TestCoApplicantValidatedWhenIncluded(t *testing.T) {
	doc := validDoc()
	doc["coapplicant"].(map[string]any)["include_coapplicant"] = true

	errs := CoApplicant(doc)

	require.NotEmpty(t, errs)
	assert.Equal(t, "coapplicant.first_name", errs[0].Path)
}

func driverRow(mutate func(map[string]any)) formdoc.Doc {
	doc := mapper.NewFormDoc()
	row := model.NewDriver()
	row["first_name"] = "Sam"
	row["last_name"] = "Rivera"
	row["dob"] = "1990-05-20"
	row["ssn"] = "123-45-6789"
	row["driving_status"] = model.DrivingLicensed
	row["license_number"] = "D1234567"
	if mutate != nil {
		mutate(row)
	}
	doc["vehicle_coverage"].(map[string]any)["drivers"] = []any{row}
	return doc
}

func TestDriverRowValid(t *testing.T) {
	assert.Empty(t, Drivers(driverRow(nil), refNow))
}

func TestDriverBlankRowSkipped(t *testing.T) {
	doc := mapper.NewFormDoc()
	doc["vehicle_coverage"].(map[string]any)["drivers"] = []any{model.NewDriver()}
	assert.Empty(t, Drivers(doc, refNow))
}

func TestDriverAgeBounds(t *testing.T) {
	tooYoung := driverRow(func(r map[string]any) { r["dob"] = "2012-01-01" })
	errs := Drivers(tooYoung, refNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "vehicle_coverage.drivers.0.dob", errs[0].Path)

	tooOld := driverRow(func(r map[string]any) { r["dob"] = "1920-01-01" })
	errs = Drivers(tooOld, refNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "vehicle_coverage.drivers.0.dob", errs[0].Path)

	sixteen := driverRow(func(r map[string]any) { r["dob"] = "2010-08-27" })
	assert.Empty(t, Drivers(sixteen, refNow))
}

func TestDriverSSNFormat(t *testing.T) {
	doc := driverRow(func(r map[string]any) { r["ssn"] = "123456789" })
	errs := Drivers(doc, refNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "vehicle_coverage.drivers.0.ssn", errs[0].Path)
}

func TestDriverLicenseRequiredWhenLicensed(t *testing.T) {
	doc := driverRow(func(r map[string]any) { r["license_number"] = "" })
	errs := Drivers(doc, refNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "vehicle_coverage.drivers.0.license_number", errs[0].Path)

	// Non-drivers never need a license number.
	doc = driverRow(func(r map[string]any) {
		r["driving_status"] = model.DrivingNonDriver
		r["license_number"] = ""
	})
	assert.Empty(t, Drivers(doc, refNow))
}

func TestDriverRowsValidatedIndependently(t *testing.T) {
	doc := driverRow(nil)
	bad := model.NewDriver()
	bad["first_name"] = "9"
	bad["last_name"] = "Rivera"
	bad["dob"] = "1990-05-20"
	drivers := doc["vehicle_coverage"].(map[string]any)["drivers"].([]any)
	doc["vehicle_coverage"].(map[string]any)["drivers"] = append(drivers, bad)

	errs := Drivers(doc, refNow)

	require.Len(t, errs, 1)
	assert.Equal(t, "vehicle_coverage.drivers.1.first_name", errs[0].Path)
}

func TestClientCollectsOrderedErrors(t *testing.T) {
	doc := mapper.NewFormDoc()

	errs, byPath := Client(doc)

	require.NotEmpty(t, errs)
	assert.Equal(t, "applicant.first_name", errs[0].Path)
	assert.Equal(t, errs[0].Message, byPath["applicant.first_name"])
}
