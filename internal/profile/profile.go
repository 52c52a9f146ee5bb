// Package profile defines the user profile carried through the wizard
// and its validation rules.
package profile

import "strings"

// Sex labels offered on the selection step.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// Field names used in validation errors.
const (
	FieldGivenName       = "givenName"
	FieldPaternalSurname = "paternalSurname"
	FieldBirthDay        = "birthDay"
	FieldBirthMonth      = "birthMonth"
	FieldBirthYear       = "birthYear"
	FieldSex             = "sex"
)

// Profile is the user data accumulated across the wizard steps. Sex is
// empty between the profile-entry and sex-selection steps; every other
// field is fixed once profile entry passes validation.
type Profile struct {
	GivenName       string `json:"givenName"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	BirthDay        int    `json:"birthDay"`
	BirthMonth      int    `json:"birthMonth"`
	BirthYear       int    `json:"birthYear"`
	Sex             string `json:"sex"`
}

// FieldError is a validation failure tied to a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the profile-entry fields (everything except Sex) and
// returns one error per offending field, in field order.
func (p Profile) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(p.GivenName) == "" {
		errs = append(errs, FieldError{FieldGivenName, "Given name is required"})
	}
	if strings.TrimSpace(p.PaternalSurname) == "" {
		errs = append(errs, FieldError{FieldPaternalSurname, "Paternal surname is required"})
	}
	if p.BirthDay < 1 || p.BirthDay > 31 {
		errs = append(errs, FieldError{FieldBirthDay, "Día inválido (1-31)"})
	}
	if p.BirthMonth < 1 || p.BirthMonth > 12 {
		errs = append(errs, FieldError{FieldBirthMonth, "Mes inválido (01-12)"})
	}
	if p.BirthYear == 0 {
		errs = append(errs, FieldError{FieldBirthYear, "Year is required"})
	}
	return errs
}

// Complete reports whether the sex-selection step has filled Sex.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Sex) != ""
}

// WithSex returns a copy of the profile with Sex set. The receiver is
// left untouched; a completed profile is never mutated in place.
func (p Profile) WithSex(sex string) Profile {
	p.Sex = sex
	return p
}

// FullName joins the name parts, skipping an empty maternal surname.
func (p Profile) FullName() string {
	parts := []string{p.GivenName, p.PaternalSurname}
	if p.MaternalSurname != "" {
		parts = append(parts, p.MaternalSurname)
	}
	return strings.Join(parts, " ")
}
