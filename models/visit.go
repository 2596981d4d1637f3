package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visit property showing record linked to a client. Creating and deleting a
// visit adjusts the client's qtdeVisitas counter.
type Visit struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientID       string             `bson:"clientId" json:"clientId"`
	Data           time.Time          `bson:"data" json:"data"`
	CodigoImovel   string             `bson:"codigoImovel" json:"codigoImovel"`
	EnderecoImovel string             `bson:"enderecoImovel" json:"enderecoImovel"`
	Feedback       string             `bson:"feedback" json:"feedback"`
	CorretorID     string             `bson:"corretorId" json:"corretorId"`
	CompanyID      string             `bson:"companyId" json:"companyId"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateVisitRequest visit intake payload
type CreateVisitRequest struct {
	ClientID       string    `json:"clientId" binding:"required"`
	Data           time.Time `json:"data"`
	CodigoImovel   string    `json:"codigoImovel" binding:"required"`
	EnderecoImovel string    `json:"enderecoImovel"`
	Feedback       string    `json:"feedback"`
}
