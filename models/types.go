package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole team member role
type UserRole string

const (
	UserRoleADMIN    UserRole = "admin"
	UserRoleCORRETOR UserRole = "corretor"
)

// SubscriptionStatus account subscription state
type SubscriptionStatus string

const (
	SubscriptionTRIAL   SubscriptionStatus = "trial"
	SubscriptionACTIVE  SubscriptionStatus = "active"
	SubscriptionEXPIRED SubscriptionStatus = "expired"
)

// TrialDays length of the free trial window
const TrialDays = 14

// TeamMember user profile, scoped to a company
type TeamMember struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email              string             `bson:"email" json:"email"`
	Nome               string             `bson:"nome" json:"nome"`
	Password           string             `bson:"password" json:"-"`
	Role               UserRole           `bson:"role" json:"role"`
	Ativo              bool               `bson:"ativo" json:"ativo"`
	CompanyID          string             `bson:"companyId" json:"companyId"`
	SubscriptionStatus SubscriptionStatus `bson:"subscriptionStatus" json:"subscriptionStatus"`
	TrialStart         time.Time          `bson:"trialStart" json:"trialStart"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InheritedSubscription returns the subscription state a new member starts
// with. Members share their company admin's window, so a corretor added on
// day 13 of the trial does not get a fresh 14 days. An unknown admin falls
// back to a fresh trial.
func InheritedSubscription(admin *TeamMember, now time.Time) (SubscriptionStatus, time.Time) {
	if admin == nil || admin.TrialStart.IsZero() {
		return SubscriptionTRIAL, now
	}
	return admin.SubscriptionStatus, admin.TrialStart
}

// TrialExpired reports whether the trial window has closed relative to now.
// Active subscriptions never expire by trial.
func (m *TeamMember) TrialExpired(now time.Time) bool {
	if m.SubscriptionStatus == SubscriptionACTIVE {
		return false
	}
	if m.SubscriptionStatus == SubscriptionEXPIRED {
		return true
	}
	return now.After(m.TrialStart.AddDate(0, 0, TrialDays))
}

type (
	// LoginRequest login payload
	LoginRequest struct {
		Email string `json:"email" binding:"required,email"`
		Senha string `json:"senha" binding:"required"`
	}

	// LoginResponse login result
	LoginResponse struct {
		Token        string     `json:"token"`
		User         TeamMember `json:"user"`
		TrialExpired bool       `json:"trialExpired"`
	}

	// RegisterRequest self-service signup; the new account becomes the admin
	// of its own company
	RegisterRequest struct {
		Email string `json:"email" binding:"required,email"`
		Nome  string `json:"nome" binding:"required,min=2"`
		Senha string `json:"senha" binding:"required,min=6"`
	}

	// CreateMemberRequest member creation by an admin
	CreateMemberRequest struct {
		Email string   `json:"email" binding:"required,email"`
		Nome  string   `json:"nome" binding:"required,min=2"`
		Senha string   `json:"senha" binding:"required,min=6"`
		Role  UserRole `json:"role" binding:"required,oneof=admin corretor"`
	}

	// UpdateMemberRequest member update by an admin
	UpdateMemberRequest struct {
		Nome  string   `json:"nome" binding:"omitempty,min=2"`
		Senha string   `json:"senha" binding:"omitempty,min=6"`
		Role  UserRole `json:"role" binding:"omitempty,oneof=admin corretor"`
	}
)
