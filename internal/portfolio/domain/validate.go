package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var domainValidator *validator.Validate

func init() {
	domainValidator = validator.New(validator.WithRequiredStructEnabled())

	domainValidator.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	domainValidator.RegisterStructValidation(certificateStructValidation, Certificate{})
	domainValidator.RegisterStructValidation(experienceStructValidation, Experience{})
	domainValidator.RegisterStructValidation(educationStructValidation, Education{})
}

func certificateStructValidation(sl validator.StructLevel) {
	cert := sl.Current().Interface().(Certificate)

	if cert.IssueDate.IsZero() {
		sl.ReportError(cert.IssueDate, "issue_date", "IssueDate", "required", "")
		return
	}
	if cert.ExpiryDate != nil && !cert.ExpiryDate.IsZero() && cert.ExpiryDate.Before(cert.IssueDate) {
		sl.ReportError(cert.ExpiryDate, "expiry_date", "ExpiryDate", "after_issue", "")
	}
}

func experienceStructValidation(sl validator.StructLevel) {
	exp := sl.Current().Interface().(Experience)

	if exp.StartDate.IsZero() {
		sl.ReportError(exp.StartDate, "start_date", "StartDate", "required", "")
		return
	}
	if !exp.Current && exp.EndDate != nil && !exp.EndDate.IsZero() && exp.EndDate.Before(exp.StartDate) {
		sl.ReportError(exp.EndDate, "end_date", "EndDate", "after_start", "")
	}
}

func educationStructValidation(sl validator.StructLevel) {
	edu := sl.Current().Interface().(Education)

	if edu.StartMonth != nil && edu.StartYear == nil {
		sl.ReportError(edu.StartMonth, "start_month", "StartMonth", "requires_year", "")
	}
	if edu.Current {
		return
	}
	if edu.EndMonth != nil && edu.EndYear == nil {
		sl.ReportError(edu.EndMonth, "end_month", "EndMonth", "requires_year", "")
	}
	if edu.StartYear != nil && edu.EndYear != nil {
		start := *edu.StartYear*12 + monthOr(edu.StartMonth, 1)
		end := *edu.EndYear*12 + monthOr(edu.EndMonth, 12)
		if end < start {
			sl.ReportError(edu.EndYear, "end_year", "EndYear", "after_start", "")
		}
	}
}

func monthOr(m *int, def int) int {
	if m == nil {
		return def
	}
	return *m
}

// Validate runs struct tags and cross-field rules and reports the first
// failure as a *ValidationError.
func Validate(v interface{}) error {
	err := domainValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewValidationError(KindInvalidField, "", err.Error())
	}

	fe := verrs[0]
	kind := KindInvalidField
	if fe.Tag() == "required" {
		kind = KindMissingField
	}
	return NewValidationError(kind, fe.Field(), describeFieldError(fe))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "enter a valid email address"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "after_issue":
		return "expiry_date must not be before issue_date"
	case "after_start":
		return fmt.Sprintf("%s must not be before the start", fe.Field())
	case "requires_year":
		return fmt.Sprintf("%s requires a year", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ClampProficiency bounds a skill level to 0..100.
func ClampProficiency(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// NormalizeSkill trims text fields and clamps proficiency.
func NormalizeSkill(s *Skill) {
	s.Name = strings.TrimSpace(s.Name)
	s.Icon = strings.TrimSpace(s.Icon)
	s.Category = SkillCategory(strings.TrimSpace(string(s.Category)))
	s.Proficiency = ClampProficiency(s.Proficiency)
	if s.Icon != SkillIconCustom {
		s.CustomSVG = ""
	}
}

func NormalizeProject(p *Project) {
	p.Title = strings.TrimSpace(p.Title)
	p.Technologies = strings.TrimSpace(p.Technologies)
	if p.Status == "" {
		p.Status = ProjectCompleted
	}
	if p.Category == "" {
		p.Category = CategoryDataAnalysis
	}
}

func NormalizeCertificate(c *Certificate) {
	c.CertificateName = strings.TrimSpace(c.CertificateName)
	c.IssuingOrganization = strings.TrimSpace(c.IssuingOrganization)
	if c.ExpiryDate != nil && c.ExpiryDate.IsZero() {
		c.ExpiryDate = nil
	}
}

// NormalizeExperience drops the end date of a current position.
func NormalizeExperience(e *Experience) {
	e.Company = strings.TrimSpace(e.Company)
	e.Position = strings.TrimSpace(e.Position)
	if e.Current || (e.EndDate != nil && e.EndDate.IsZero()) {
		e.EndDate = nil
	}
}

// NormalizeEducation drops the end year and month of ongoing studies.
func NormalizeEducation(e *Education) {
	e.Institution = strings.TrimSpace(e.Institution)
	e.Degree = strings.TrimSpace(e.Degree)
	e.FieldOfStudy = strings.TrimSpace(e.FieldOfStudy)
	if e.Current {
		e.EndYear = nil
		e.EndMonth = nil
	}
}

func NormalizeAbout(a *About) {
	a.Name = strings.TrimSpace(a.Name)
	a.Title = strings.TrimSpace(a.Title)
	a.Email = strings.TrimSpace(a.Email)
}
