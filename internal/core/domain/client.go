package domain

import "time"

// ClientStatus represents the business state of a client record.
type ClientStatus string

const (
	ClientActive    ClientStatus = "active"
	ClientInactive  ClientStatus = "inactive"
	ClientSuspended ClientStatus = "suspended"
)

// Client is a business-profile record owned by exactly one user. OwnerID is
// set at creation from the authenticated caller and is never mutable.
type Client struct {
	ID                    string       `json:"id" bson:"_id"`
	OwnerID               string       `json:"owner_id" bson:"owner_id"`
	TradeName             string       `json:"trade_name" bson:"trade_name"`
	TaxID                 string       `json:"tax_id" bson:"tax_id"`
	LegalName             string       `json:"legal_name" bson:"legal_name"`
	StateRegistration     string       `json:"state_registration,omitempty" bson:"state_registration,omitempty"`
	MunicipalRegistration string       `json:"municipal_registration,omitempty" bson:"municipal_registration,omitempty"`
	ZipCode               string       `json:"zip_code" bson:"zip_code"`
	Street                string       `json:"street" bson:"street"`
	Number                string       `json:"number" bson:"number"`
	Complement            string       `json:"complement,omitempty" bson:"complement,omitempty"`
	District              string       `json:"district" bson:"district"`
	City                  string       `json:"city" bson:"city"`
	State                 string       `json:"state" bson:"state"`
	Country               string       `json:"country" bson:"country"`
	Phone                 string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Email                 string       `json:"email,omitempty" bson:"email,omitempty"`
	Website               string       `json:"website,omitempty" bson:"website,omitempty"`
	Status                ClientStatus `json:"status" bson:"status"`
	Notes                 string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt             time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at" bson:"updated_at"`
}

// ValidStatus reports whether s is one of the recognised client statuses.
func ValidStatus(s ClientStatus) bool {
	switch s {
	case ClientActive, ClientInactive, ClientSuspended:
		return true
	}
	return false
}
