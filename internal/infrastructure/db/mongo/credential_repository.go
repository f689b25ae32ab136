package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

const credentialCollection = "credentials"

// CredentialRepository implements the credential port on MongoDB, for
// deployments where the fixture table is swapped for a real account store.
// The collection is expected to carry a unique index on email.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(credentialCollection)}
}

type credentialDoc struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	Role         string `bson:"role"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`

	Address         string `bson:"address,omitempty"`
	IsSystemOffline bool   `bson:"is_system_offline,omitempty"`

	BusinessName     string  `bson:"business_name,omitempty"`
	EnergySourceType string  `bson:"energy_source_type,omitempty"`
	SystemCapacityKW float64 `bson:"system_capacity_kw,omitempty"`
	MeterDeviceID    string  `bson:"meter_device_id,omitempty"`
	WalletAddress    string  `bson:"wallet_address,omitempty"`

	ConnectionType     string  `bson:"connection_type,omitempty"`
	MonthlyUsageKWh    float64 `bson:"monthly_usage_kwh,omitempty"`
	BatteryBrand       string  `bson:"battery_brand,omitempty"`
	BatteryCapacityKWh float64 `bson:"battery_capacity_kwh,omitempty"`
	PaymentPreference  string  `bson:"payment_preference,omitempty"`
	Phone              string  `bson:"phone,omitempty"`
}

func toDoc(c *domain.Credential) credentialDoc {
	return credentialDoc{
		ID:                 c.ID,
		Email:              c.Email,
		Name:               c.Name,
		Role:               c.Role,
		PasswordHash:       c.PasswordHash,
		CreatedAt:          c.CreatedAt.Unix(),
		Address:            c.Address,
		IsSystemOffline:    c.IsSystemOffline,
		BusinessName:       c.BusinessName,
		EnergySourceType:   c.EnergySourceType,
		SystemCapacityKW:   c.SystemCapacityKW,
		MeterDeviceID:      c.MeterDeviceID,
		WalletAddress:      c.WalletAddress,
		ConnectionType:     c.ConnectionType,
		MonthlyUsageKWh:    c.MonthlyUsageKWh,
		BatteryBrand:       c.BatteryBrand,
		BatteryCapacityKWh: c.BatteryCapacityKWh,
		PaymentPreference:  c.PaymentPreference,
		Phone:              c.Phone,
	}
}

func (d credentialDoc) toDomain() *domain.Credential {
	return &domain.Credential{
		User: domain.User{
			ID:                 d.ID,
			Email:              d.Email,
			Name:               d.Name,
			Role:               d.Role,
			CreatedAt:          unixToTime(d.CreatedAt),
			Address:            d.Address,
			IsSystemOffline:    d.IsSystemOffline,
			BusinessName:       d.BusinessName,
			EnergySourceType:   d.EnergySourceType,
			SystemCapacityKW:   d.SystemCapacityKW,
			MeterDeviceID:      d.MeterDeviceID,
			WalletAddress:      d.WalletAddress,
			ConnectionType:     d.ConnectionType,
			MonthlyUsageKWh:    d.MonthlyUsageKWh,
			BatteryBrand:       d.BatteryBrand,
			BatteryCapacityKWh: d.BatteryCapacityKWh,
			PaymentPreference:  d.PaymentPreference,
			Phone:              d.Phone,
		},
		PasswordHash: d.PasswordHash,
	}
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var doc credentialDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CredentialRepository) Insert(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	if _, err := r.coll.InsertOne(ctx, toDoc(cred)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("insert credential: %w", err)
	}
	return r.FindByEmail(ctx, cred.Email)
}

func (r *CredentialRepository) UpdateProfileByID(ctx context.Context, id string, update domain.ProfileUpdate) error {
	set := bson.M{}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.IsSystemOffline != nil {
		set["is_system_offline"] = *update.IsSystemOffline
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *CredentialRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count credentials: %w", err)
	}
	return int(n), nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
