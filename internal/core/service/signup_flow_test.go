package service

import (
	"testing"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

func validProducerForm() SignupForm {
	return SignupForm{
		Name:              "Solar Co",
		Email:             "solar@x.com",
		Password:          "pw123456",
		ConfirmPassword:   "pw123456",
		EnergySourceType:  "solar",
		SystemCapacityKW:  12.5,
		Address:           "1 Grid St",
		ContactNumber:     "0712345678",
		MeterDeviceID:     "MTR-001",
		BankWalletAddress: "0xabc",
		AgreeToTerms:      true,
	}
}

func validConsumerForm() SignupForm {
	return SignupForm{
		Name:                "Home User",
		Email:               "home@x.com",
		Password:            "pw123456",
		ConfirmPassword:     "pw123456",
		Address:             "2 Grid St",
		ConnectionType:      "residential",
		AverageMonthlyUsage: 320,
		AgreeToTerms:        true,
	}
}

func TestSignupValidator_AccountStep(t *testing.T) {
	sv := NewSignupValidator()

	cases := []struct {
		name    string
		mutate  func(*SignupForm)
		field   string
		message string
	}{
		{"missing name", func(f *SignupForm) { f.Name = "" }, "name", "Full name is required"},
		{"missing email", func(f *SignupForm) { f.Email = "" }, "email", "Email is required"},
		{"bad email", func(f *SignupForm) { f.Email = "not-an-email" }, "email", "Invalid email address"},
		{"short password", func(f *SignupForm) { f.Password = "short"; f.ConfirmPassword = "short" }, "password", "Password must be at least 8 characters"},
		{"mismatch", func(f *SignupForm) { f.ConfirmPassword = "different1" }, "confirm_password", "Passwords do not match"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validProducerForm()
			tc.mutate(&form)

			errs := sv.ValidateStep(domain.RoleProducer, StepAccount, form)
			if errs[tc.field] != tc.message {
				t.Fatalf("expected %q on %s, got %+v", tc.message, tc.field, errs)
			}
		})
	}

	if errs := sv.ValidateStep(domain.RoleProducer, StepAccount, validProducerForm()); len(errs) != 0 {
		t.Fatalf("valid account step must pass, got %+v", errs)
	}
}

func TestSignupValidator_ProducerDetails(t *testing.T) {
	sv := NewSignupValidator()

	form := validProducerForm()
	form.EnergySourceType = ""
	form.SystemCapacityKW = 0
	form.ContactNumber = ""

	errs := sv.ValidateStep(domain.RoleProducer, StepDetails, form)
	for _, field := range []string{"energy_source_type", "system_capacity_kw", "contact_number"} {
		if errs[field] == "" {
			t.Fatalf("expected error on %s, got %+v", field, errs)
		}
	}

	if errs := sv.ValidateStep(domain.RoleProducer, StepDetails, validProducerForm()); len(errs) != 0 {
		t.Fatalf("valid producer details must pass, got %+v", errs)
	}
}

func TestSignupValidator_ConsumerDetails(t *testing.T) {
	sv := NewSignupValidator()

	form := validConsumerForm()
	form.ConnectionType = ""
	form.AverageMonthlyUsage = -1

	errs := sv.ValidateStep(domain.RoleConsumer, StepDetails, form)
	if errs["connection_type"] != "Please select a connection type" {
		t.Fatalf("expected connection type error, got %+v", errs)
	}
	if errs["average_monthly_usage"] != "Please enter a valid usage amount" {
		t.Fatalf("expected usage error, got %+v", errs)
	}
}

func TestSignupValidator_ConfirmStep(t *testing.T) {
	sv := NewSignupValidator()

	form := validProducerForm()
	form.MeterDeviceID = ""
	form.AgreeToTerms = false

	errs := sv.ValidateStep(domain.RoleProducer, StepConfirm, form)
	if errs["meter_device_id"] == "" || errs["agree_to_terms"] == "" {
		t.Fatalf("expected meter and terms errors, got %+v", errs)
	}

	// Consumers have no meter requirement, only the terms checkbox.
	consumer := validConsumerForm()
	consumer.AgreeToTerms = false
	errs = sv.ValidateStep(domain.RoleConsumer, StepConfirm, consumer)
	if len(errs) != 1 || errs["agree_to_terms"] == "" {
		t.Fatalf("expected only terms error for consumer, got %+v", errs)
	}
}

func TestSignupValidator_ValidateAll(t *testing.T) {
	sv := NewSignupValidator()

	if errs := sv.ValidateAll(domain.RoleProducer, validProducerForm()); len(errs) != 0 {
		t.Fatalf("valid producer form must pass, got %+v", errs)
	}
	if errs := sv.ValidateAll(domain.RoleConsumer, validConsumerForm()); len(errs) != 0 {
		t.Fatalf("valid consumer form must pass, got %+v", errs)
	}

	errs := sv.ValidateAll(domain.RoleProducer, SignupForm{})
	if len(errs) == 0 {
		t.Fatalf("empty form must accumulate errors across steps")
	}
	for _, field := range []string{"name", "email", "password", "energy_source_type", "agree_to_terms"} {
		if errs[field] == "" {
			t.Fatalf("expected error on %s, got %+v", field, errs)
		}
	}
}
