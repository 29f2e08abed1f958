package domain

import "strings"

// Normalize trims every field of the submission.
func (in ContactInput) Normalize() ContactInput {
	return ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
}

// Validate checks an already normalized submission. The e-mail check is
// deliberately loose: it only requires an "@" and a ".".
func (in ContactInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"subject", in.Subject},
		{"message", in.Message},
	}
	for _, r := range required {
		if r.value == "" {
			return NewValidationError(KindMissingField, r.field, "Please fill in all required fields.")
		}
	}

	if !strings.Contains(in.Email, "@") || !strings.Contains(in.Email, ".") {
		return NewValidationError(KindMalformedEmail, "email", "Please enter a valid email address.")
	}
	return nil
}
