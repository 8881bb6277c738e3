// file: internals/features/crm/interactions/dto/crm_interaction_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/crm/interactions/model"
)

type CreateCrmInteractionDTO struct {
	CrmInteractionClientID uuid.UUID `json:"crm_interaction_client_id" validate:"required"`
	CrmInteractionKind     string    `json:"crm_interaction_kind" validate:"required,oneof=billing support collection info"`
	CrmInteractionBody     string    `json:"crm_interaction_body" validate:"required"`
	CrmInteractionAuthor   *string   `json:"crm_interaction_author,omitempty" validate:"omitempty,max=80"`
}

type CrmInteractionResponse struct {
	CrmInteractionID       uuid.UUID `json:"crm_interaction_id"`
	CrmInteractionClientID uuid.UUID `json:"crm_interaction_client_id"`
	CrmInteractionKind     string    `json:"crm_interaction_kind"`
	CrmInteractionBody     string    `json:"crm_interaction_body"`
	CrmInteractionAuthor   *string   `json:"crm_interaction_author,omitempty"`
	CrmInteractionCreatedAt time.Time `json:"crm_interaction_created_at"`
}

func (r CreateCrmInteractionDTO) ToCrmInteractionModel() model.CrmInteraction {
	return model.CrmInteraction{
		CrmInteractionClientID: r.CrmInteractionClientID,
		CrmInteractionKind:     model.CrmInteractionKind(r.CrmInteractionKind),
		CrmInteractionBody:     strings.TrimSpace(r.CrmInteractionBody),
		CrmInteractionAuthor:   r.CrmInteractionAuthor,
	}
}

func ToCrmInteractionResponse(m model.CrmInteraction) CrmInteractionResponse {
	return CrmInteractionResponse{
		CrmInteractionID:        m.CrmInteractionID,
		CrmInteractionClientID:  m.CrmInteractionClientID,
		CrmInteractionKind:      string(m.CrmInteractionKind),
		CrmInteractionBody:      m.CrmInteractionBody,
		CrmInteractionAuthor:    m.CrmInteractionAuthor,
		CrmInteractionCreatedAt: m.CrmInteractionCreatedAt,
	}
}

func ToCrmInteractionResponses(list []model.CrmInteraction) []CrmInteractionResponse {
	out := make([]CrmInteractionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToCrmInteractionResponse(v))
	}
	return out
}
