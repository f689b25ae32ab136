package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// Wizard step numbers. Both signup flows are three steps: account,
// role-specific details, confirmation.
const (
	StepAccount = 1
	StepDetails = 2
	StepConfirm = 3
)

// SignupForm is the union of the fields collected by the producer and
// consumer signup wizards. Role decides which fields each step checks.
type SignupForm struct {
	// Step 1 — account.
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`

	// Step 2 — producer details.
	BusinessName     string  `json:"business_name"`
	EnergySourceType string  `json:"energy_source_type"`
	SystemCapacityKW float64 `json:"system_capacity_kw"`
	ContactNumber    string  `json:"contact_number"`

	// Step 2 — consumer details.
	ConnectionType      string  `json:"connection_type"`
	AverageMonthlyUsage float64 `json:"average_monthly_usage"`

	// Shared by both step 2 variants.
	Address string `json:"address"`

	// Step 3 — producer confirmation.
	MeterDeviceID     string `json:"meter_device_id"`
	BankWalletAddress string `json:"bank_wallet_address"`

	// Step 3 — optional consumer extras.
	BatteryBrand           string  `json:"battery_brand"`
	BatteryCapacityKWh     float64 `json:"battery_capacity_kwh"`
	PreferredPaymentOption string  `json:"preferred_payment_option"`
	PhoneNumber            string  `json:"phone_number"`

	AgreeToTerms bool `json:"agree_to_terms"`
}

// FieldErrors maps form field names to human-readable messages.
type FieldErrors map[string]string

// SignupValidator validates the multi-step signup wizard server-side.
type SignupValidator struct {
	v *validator.Validate
}

func NewSignupValidator() *SignupValidator {
	return &SignupValidator{v: validator.New()}
}

// ValidateStep checks a single wizard step for the given role and returns
// the field errors, empty when the step is valid.
func (sv *SignupValidator) ValidateStep(role string, step int, form SignupForm) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case StepAccount:
		sv.validateAccount(form, errs)
	case StepDetails:
		if role == domain.RoleProducer {
			sv.validateProducerDetails(form, errs)
		} else {
			sv.validateConsumerDetails(form, errs)
		}
	case StepConfirm:
		if role == domain.RoleProducer {
			if form.MeterDeviceID == "" {
				errs["meter_device_id"] = "Meter/Device ID is required"
			}
			if form.BankWalletAddress == "" {
				errs["bank_wallet_address"] = "Banking or wallet address is required"
			}
		}
		if !form.AgreeToTerms {
			errs["agree_to_terms"] = "You must agree to the terms and conditions"
		}
	}
	return errs
}

// ValidateAll runs every step in order, accumulating errors. Used on final
// submission before the account is created.
func (sv *SignupValidator) ValidateAll(role string, form SignupForm) FieldErrors {
	errs := FieldErrors{}
	for step := StepAccount; step <= StepConfirm; step++ {
		for field, msg := range sv.ValidateStep(role, step, form) {
			errs[field] = msg
		}
	}
	return errs
}

func (sv *SignupValidator) validateAccount(form SignupForm, errs FieldErrors) {
	if form.Name == "" {
		errs["name"] = "Full name is required"
	}
	if form.Email == "" {
		errs["email"] = "Email is required"
	} else if sv.v.Var(form.Email, "email") != nil {
		errs["email"] = "Invalid email address"
	}
	if form.Password == "" {
		errs["password"] = "Password is required"
	} else if sv.v.Var(form.Password, "min=8") != nil {
		errs["password"] = "Password must be at least 8 characters"
	}
	if form.ConfirmPassword == "" {
		errs["confirm_password"] = "Please confirm your password"
	} else if form.Password != form.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}
}

func (sv *SignupValidator) validateProducerDetails(form SignupForm, errs FieldErrors) {
	if form.EnergySourceType == "" {
		errs["energy_source_type"] = "Please select an energy source"
	}
	if form.SystemCapacityKW <= 0 {
		errs["system_capacity_kw"] = "Please enter a valid capacity (kW)"
	}
	if form.Address == "" {
		errs["address"] = "Address is required"
	}
	if form.ContactNumber == "" {
		errs["contact_number"] = "Contact number is required"
	}
}

func (sv *SignupValidator) validateConsumerDetails(form SignupForm, errs FieldErrors) {
	if form.Address == "" {
		errs["address"] = "Address is required"
	}
	if form.ConnectionType == "" {
		errs["connection_type"] = "Please select a connection type"
	}
	if form.AverageMonthlyUsage <= 0 {
		errs["average_monthly_usage"] = "Please enter a valid usage amount"
	}
}
