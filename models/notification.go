package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BroadcastRecipient destinatarioId value addressing every member of the company
const BroadcastRecipient = "all"

// NotificationType visual category of a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification message sent to one member or broadcast to the whole company
type Notification struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Titulo         string             `bson:"titulo" json:"titulo"`
	Mensagem       string             `bson:"mensagem" json:"mensagem"`
	Tipo           NotificationType   `bson:"tipo" json:"tipo"`
	DestinatarioID string             `bson:"destinatarioId" json:"destinatarioId"`
	RemetenteID    string             `bson:"remetenteId" json:"remetenteId"`
	RemetenteNome  string             `bson:"remetenteNome" json:"remetenteNome"`
	CompanyID      string             `bson:"companyId" json:"companyId"`
	Lida           bool               `bson:"lida" json:"lida"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// SendNotificationRequest notification payload
type SendNotificationRequest struct {
	Titulo         string           `json:"titulo" binding:"required"`
	Mensagem       string           `json:"mensagem" binding:"required"`
	Tipo           NotificationType `json:"tipo" binding:"required,oneof=info warning success error"`
	DestinatarioID string           `json:"destinatarioId" binding:"required"`
}
