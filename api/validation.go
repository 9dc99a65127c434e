package api

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator mirrors the form-level checks the backend enforces, so obviously
// bad input fails before a network round-trip.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ValidateCredentials validates login input
func (v *Validator) ValidateCredentials(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateRegistration validates a registration payload
func (v *Validator) ValidateRegistration(req RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if len(nonDigits.ReplaceAllString(req.Phone, "")) < 10 {
		return fmt.Errorf("phone number must have at least 10 digits")
	}
	if len(req.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

// ValidateAppointment validates a booking payload
func (v *Validator) ValidateAppointment(req AppointmentRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if err := validateEmail(req.CustomerEmail); err != nil {
		return err
	}
	if len(nonDigits.ReplaceAllString(req.CustomerPhone, "")) != 10 {
		return fmt.Errorf("phone number must be exactly 10 digits")
	}
	if req.AppointmentDate == "" || req.AppointmentTime == "" {
		return fmt.Errorf("appointment date and time are required")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
