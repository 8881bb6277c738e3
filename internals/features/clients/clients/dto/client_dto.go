// file: internals/features/clients/clients/dto/client_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "netku_backend/internals/features/clients/clients/model"
)

////////////////////////////////////////////////////////////////////////////////
// CLIENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type CreateClientDTO struct {
	ClientCode    string   `json:"client_code" validate:"required,max=40"`
	ClientName    string   `json:"client_name" validate:"required,max=120"`
	ClientAddress *string  `json:"client_address,omitempty"`
	ClientPhones  []string `json:"client_phones,omitempty" validate:"omitempty,dive,max=20"`
	ClientEmail   *string  `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientNote    *string  `json:"client_note,omitempty"`
}

type UpdateClientDTO struct {
	ClientCode    *string  `json:"client_code,omitempty" validate:"omitempty,max=40"`
	ClientName    *string  `json:"client_name,omitempty" validate:"omitempty,max=120"`
	ClientAddress *string  `json:"client_address,omitempty"`
	ClientPhones  []string `json:"client_phones,omitempty" validate:"omitempty,dive,max=20"`
	ClientEmail   *string  `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientStatus  *string  `json:"client_status,omitempty" validate:"omitempty,oneof=active inactive archived"`
	ClientNote    *string  `json:"client_note,omitempty"`
}

type ClientResponse struct {
	ClientID      uuid.UUID `json:"client_id"`
	ClientCode    string    `json:"client_code"`
	ClientName    string    `json:"client_name"`
	ClientAddress *string   `json:"client_address,omitempty"`
	ClientPhones  []string  `json:"client_phones,omitempty"`
	ClientEmail   *string   `json:"client_email,omitempty"`
	ClientStatus  string    `json:"client_status"`
	ClientNote    *string   `json:"client_note,omitempty"`

	ClientCreatedAt time.Time `json:"client_created_at"`
	ClientUpdatedAt time.Time `json:"client_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (r CreateClientDTO) ToClientModel() model.Client {
	return model.Client{
		ClientCode:    strings.TrimSpace(r.ClientCode),
		ClientName:    strings.TrimSpace(r.ClientName),
		ClientAddress: r.ClientAddress,
		ClientPhones:  pq.StringArray(r.ClientPhones),
		ClientEmail:   r.ClientEmail,
		ClientNote:    r.ClientNote,
	}
}

func (r UpdateClientDTO) ApplyClientUpdate(m *model.Client) {
	if r.ClientCode != nil {
		m.ClientCode = strings.TrimSpace(*r.ClientCode)
	}
	if r.ClientName != nil {
		m.ClientName = strings.TrimSpace(*r.ClientName)
	}
	if r.ClientAddress != nil {
		m.ClientAddress = r.ClientAddress
	}
	if r.ClientPhones != nil {
		m.ClientPhones = pq.StringArray(r.ClientPhones)
	}
	if r.ClientEmail != nil {
		m.ClientEmail = r.ClientEmail
	}
	if r.ClientStatus != nil {
		m.ClientStatus = model.ClientStatus(*r.ClientStatus)
	}
	if r.ClientNote != nil {
		m.ClientNote = r.ClientNote
	}
}

func ToClientResponse(m model.Client) ClientResponse {
	return ClientResponse{
		ClientID:        m.ClientID,
		ClientCode:      m.ClientCode,
		ClientName:      m.ClientName,
		ClientAddress:   m.ClientAddress,
		ClientPhones:    []string(m.ClientPhones),
		ClientEmail:     m.ClientEmail,
		ClientStatus:    string(m.ClientStatus),
		ClientNote:      m.ClientNote,
		ClientCreatedAt: m.ClientCreatedAt,
		ClientUpdatedAt: m.ClientUpdatedAt,
	}
}

func ToClientResponses(list []model.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToClientResponse(v))
	}
	return out
}
