package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InteractionChannel contact medium of an interaction
type InteractionChannel string

const (
	InteractionWhatsapp   InteractionChannel = "whatsapp"
	InteractionLigacao    InteractionChannel = "ligacao"
	InteractionEmail      InteractionChannel = "email"
	InteractionPresencial InteractionChannel = "presencial"
)

// Interaction timestamped contact log entry linked to a client
type Interaction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientID   string             `bson:"clientId" json:"clientId"`
	Data       time.Time          `bson:"data" json:"data"`
	Meio       InteractionChannel `bson:"meio" json:"meio"`
	Resumo     string             `bson:"resumo" json:"resumo"`
	CorretorID string             `bson:"corretorId" json:"corretorId"`
	CompanyID  string             `bson:"companyId" json:"companyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateInteractionRequest interaction intake payload
type CreateInteractionRequest struct {
	ClientID string             `json:"clientId" binding:"required"`
	Data     time.Time          `json:"data"`
	Meio     InteractionChannel `json:"meio" binding:"required,oneof=whatsapp ligacao email presencial"`
	Resumo   string             `json:"resumo" binding:"required"`
}
