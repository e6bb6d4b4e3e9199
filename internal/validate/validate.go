package validate

import (
	"fmt"
	"regexp"
	"time"

	"intake-engine/internal/formdoc"
	"intake-engine/internal/mapper"
	"intake-engine/internal/model"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z .,'-]*$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phoneRe = regexp.MustCompile(`^[0-9()\-. +]{7,20}$`)
	ssnRe   = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
)

const dateLayout = "2006-01-02"

// person runs the structural checks shared by applicant and co-applicant.
// Errors are keyed by dotted field path and appended in a fixed field order so
// the first entry is a stable scroll-to target.
func person(p map[string]any, prefix string) []model.FieldError {
	var errs []model.FieldError

	add := func(path, msg string) {
		errs = append(errs, model.FieldError{Path: prefix + "." + path, Message: msg})
	}

	first := stringAt(p, "first_name")
	if first == "" {
		add("first_name", "First name is required")
	} else if !nameRe.MatchString(first) {
		add("first_name", "First name contains invalid characters")
	}

	last := stringAt(p, "last_name")
	if last == "" {
		add("last_name", "Last name is required")
	} else if !nameRe.MatchString(last) {
		add("last_name", "Last name contains invalid characters")
	}

	contact, _ := p["contact"].(map[string]any)
	if email := stringAt(contact, "email"); email != "" && !emailRe.MatchString(email) {
		add("contact.email", "Email address is not valid")
	}
	if zip := stringAt(contact, "zip"); zip != "" && !zipRe.MatchString(zip) {
		add("contact.zip", "ZIP code must be 5 digits")
	}
	for _, phone := range []string{"home_phone", "work_phone", "cell_phone", "other_phone"} {
		if v := stringAt(contact, phone); v != "" && !phoneRe.MatchString(v) {
			add("contact."+phone, "Phone number is not valid")
		}
	}

	if dob := stringAt(p, "date_of_birth"); dob != "" {
		if _, err := time.Parse(dateLayout, dob); err != nil {
			add("date_of_birth", "Date of birth must be YYYY-MM-DD")
		}
	}

	return errs
}

// Applicant validates the applicant section.
func Applicant(doc formdoc.Doc) []model.FieldError {
	p, _ := doc["applicant"].(map[string]any)
	return person(p, "applicant")
}

// CoApplicant validates the co-applicant section. When include_coapplicant is
// false the section is void and always passes.
func CoApplicant(doc formdoc.Doc) []model.FieldError {
	p, _ := doc["coapplicant"].(map[string]any)
	if !formdoc.Bool(doc, "coapplicant", "include_coapplicant") {
		return nil
	}
	return person(p, "coapplicant")
}

// driver validates one driver row. Blank rows are skipped by the caller; a row
// someone started filling in must be complete and consistent.
func driver(row map[string]any, prefix string, now time.Time) []model.FieldError {
	var errs []model.FieldError

	add := func(path, msg string) {
		errs = append(errs, model.FieldError{Path: prefix + "." + path, Message: msg})
	}

	for _, f := range []string{"first_name", "last_name"} {
		v := stringAt(row, f)
		if v == "" {
			add(f, "Name is required")
		} else if !nameRe.MatchString(v) {
			add(f, "Name contains invalid characters")
		}
	}

	dob := stringAt(row, "dob")
	if dob == "" {
		add("dob", "Date of birth is required")
	} else if born, err := time.Parse(dateLayout, dob); err != nil {
		add("dob", "Date of birth must be YYYY-MM-DD")
	} else {
		age := yearsBetween(born, now)
		if age < 16 || age > 99 {
			add("dob", "Driver age must be between 16 and 99")
		}
	}

	if ssn := stringAt(row, "ssn"); ssn != "" && !ssnRe.MatchString(ssn) {
		add("ssn", "SSN must match ###-##-####")
	}

	if stringAt(row, "driving_status") == model.DrivingLicensed && stringAt(row, "license_number") == "" {
		add("license_number", "License number is required for licensed drivers")
	}

	return errs
}

// Drivers validates every non-blank driver row on the vehicle coverage
// section, recomputing each row's error table independently.
func Drivers(doc formdoc.Doc, now time.Time) []model.FieldError {
	var errs []model.FieldError
	rows, _ := formdoc.Get(doc, formdoc.Path{"vehicle_coverage", "drivers"})
	list, _ := rows.([]any)
	for i, r := range list {
		row, _ := r.(map[string]any)
		if mapper.IsBlankDriver(row) {
			continue
		}
		prefix := fmt.Sprintf("vehicle_coverage.drivers.%d", i)
		errs = append(errs, driver(row, prefix, now)...)
	}
	return errs
}

// Client runs every section validator in fixed order and returns the ordered
// error list plus a path-keyed map. An empty result means the document may be
// submitted.
func Client(doc formdoc.Doc) ([]model.FieldError, map[string]string) {
	var errs []model.FieldError
	errs = append(errs, Applicant(doc)...)
	errs = append(errs, CoApplicant(doc)...)
	errs = append(errs, Drivers(doc, time.Now())...)

	byPath := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, dup := byPath[e.Path]; !dup {
			byPath[e.Path] = e.Message
		}
	}
	return errs, byPath
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// yearsBetween counts whole years from born to now.
func yearsBetween(born, now time.Time) int {
	years := now.Year() - born.Year()
	anniversary := born.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
