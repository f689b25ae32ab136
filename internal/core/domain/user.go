package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleProducer = "producer"
	RoleConsumer = "consumer"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrDuplicateAccount = errors.New("account already exists")
var ErrNoActiveSession = errors.New("no active session")
var ErrAccountNotFound = errors.New("account not found")
var ErrRoleNotAllowed = errors.New("role not allowed for self-registration")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the three platform roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleProducer || role == RoleConsumer
}

// SelfRegisterRole reports whether role may be chosen during signup.
// Admin accounts are provisioned out of band and never self-register.
func SelfRegisterRole(role string) bool {
	return role == RoleProducer || role == RoleConsumer
}

// User is the password-free projection of an account. It is the only shape
// the session layer and the API ever see; credentials stay behind the
// identity backend.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Address         string    `json:"address,omitempty"`
	IsSystemOffline bool      `json:"is_system_offline,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// Producer profile, collected by the producer signup wizard.
	BusinessName     string  `json:"business_name,omitempty"`
	EnergySourceType string  `json:"energy_source_type,omitempty"`
	SystemCapacityKW float64 `json:"system_capacity_kw,omitempty"`
	MeterDeviceID    string  `json:"meter_device_id,omitempty"`
	WalletAddress    string  `json:"wallet_address,omitempty"`

	// Consumer profile, collected by the consumer signup wizard.
	ConnectionType     string  `json:"connection_type,omitempty"`
	MonthlyUsageKWh    float64 `json:"monthly_usage_kwh,omitempty"`
	BatteryBrand       string  `json:"battery_brand,omitempty"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh,omitempty"`
	PaymentPreference  string  `json:"payment_preference,omitempty"`
	Phone              string  `json:"phone,omitempty"`
}

// ProfileUpdate carries the optional fields a profile update may touch.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Address         *string `json:"address,omitempty"`
	IsSystemOffline *bool   `json:"is_system_offline,omitempty"`
}

// Apply merges the update into u in place.
func (p ProfileUpdate) Apply(u *User) {
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.IsSystemOffline != nil {
		u.IsSystemOffline = *p.IsSystemOffline
	}
}

// Credential is the backend-only account record. The password hash never
// leaves the identity backend; callers only ever receive the projection.
type Credential struct {
	User
	PasswordHash string `json:"-"`
}

// Projection returns a copy of the password-free user record.
func (c *Credential) Projection() *User {
	u := c.User
	return &u
}
