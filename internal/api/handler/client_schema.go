package handler

import "github.com/conectar/clients-api/internal/core/ports"

type createClientRequest struct {
	TradeName             string `json:"trade_name" validate:"required"`
	TaxID                 string `json:"tax_id" validate:"required"`
	LegalName             string `json:"legal_name" validate:"required"`
	StateRegistration     string `json:"state_registration"`
	MunicipalRegistration string `json:"municipal_registration"`
	ZipCode               string `json:"zip_code" validate:"required"`
	Street                string `json:"street" validate:"required"`
	Number                string `json:"number" validate:"required"`
	Complement            string `json:"complement"`
	District              string `json:"district" validate:"required"`
	City                  string `json:"city" validate:"required"`
	State                 string `json:"state" validate:"required"`
	Country               string `json:"country"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email" validate:"omitempty,email"`
	Website               string `json:"website"`
	Status                string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Notes                 string `json:"notes"`
	// OwnerID is accepted but ignored: ownership always comes from the
	// authenticated caller.
	OwnerID string `json:"owner_id"`
}

func (r createClientRequest) toInput() ports.CreateClientInput {
	return ports.CreateClientInput{
		TradeName:             r.TradeName,
		TaxID:                 r.TaxID,
		LegalName:             r.LegalName,
		StateRegistration:     r.StateRegistration,
		MunicipalRegistration: r.MunicipalRegistration,
		ZipCode:               r.ZipCode,
		Street:                r.Street,
		Number:                r.Number,
		Complement:            r.Complement,
		District:              r.District,
		City:                  r.City,
		State:                 r.State,
		Country:               r.Country,
		Phone:                 r.Phone,
		Email:                 r.Email,
		Website:               r.Website,
		Status:                r.Status,
		Notes:                 r.Notes,
	}
}

type updateClientRequest struct {
	TradeName             *string `json:"trade_name"`
	TaxID                 *string `json:"tax_id"`
	LegalName             *string `json:"legal_name"`
	StateRegistration     *string `json:"state_registration"`
	MunicipalRegistration *string `json:"municipal_registration"`
	ZipCode               *string `json:"zip_code"`
	Street                *string `json:"street"`
	Number                *string `json:"number"`
	Complement            *string `json:"complement"`
	District              *string `json:"district"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	Country               *string `json:"country"`
	Phone                 *string `json:"phone"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	Website               *string `json:"website"`
	Status                *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Notes                 *string `json:"notes"`
}

func (r updateClientRequest) toPatch() ports.ClientPatch {
	return ports.ClientPatch{
		TradeName:             r.TradeName,
		TaxID:                 r.TaxID,
		LegalName:             r.LegalName,
		StateRegistration:     r.StateRegistration,
		MunicipalRegistration: r.MunicipalRegistration,
		ZipCode:               r.ZipCode,
		Street:                r.Street,
		Number:                r.Number,
		Complement:            r.Complement,
		District:              r.District,
		City:                  r.City,
		State:                 r.State,
		Country:               r.Country,
		Phone:                 r.Phone,
		Email:                 r.Email,
		Website:               r.Website,
		Status:                r.Status,
		Notes:                 r.Notes,
	}
}

type clientResponse struct {
	Message string      `json:"message"`
	Client  interface{} `json:"client,omitempty"`
}
