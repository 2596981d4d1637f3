package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReceiptStatus review lifecycle of an uploaded payment receipt
type ReceiptStatus string

const (
	ReceiptPending  ReceiptStatus = "pending"
	ReceiptApproved ReceiptStatus = "approved"
	ReceiptRejected ReceiptStatus = "rejected"
)

// PaymentReceipt proof-of-payment image uploaded by a member. The image is
// kept as a base64 data URI on the document itself, not in blob storage.
type PaymentReceipt struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID       string             `bson:"userId" json:"userId"`
	CompanyID    string             `bson:"companyId" json:"companyId"`
	ImageData    string             `bson:"imageData" json:"imageData"`
	Status       ReceiptStatus      `bson:"status" json:"status"`
	RejectReason string             `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	ReviewedAt   *time.Time         `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy   string             `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`

	// Denormalized for the admin listing, never persisted.
	UserName  string `bson:"-" json:"userName,omitempty"`
	UserEmail string `bson:"-" json:"userEmail,omitempty"`
}

// UploadReceiptRequest receipt upload payload
type UploadReceiptRequest struct {
	ImageData string `json:"imageData" binding:"required"`
}

// RejectReceiptRequest rejection payload
type RejectReceiptRequest struct {
	Reason string `json:"reason" binding:"required"`
}
