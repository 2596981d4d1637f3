package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imobcrm/imobcrm_end/config"
	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/utils"
)

// Login authenticates a member by email/password. An unknown email matching
// the bootstrap admin address provisions the admin profile on the fly; any
// other unknown email is refused as unauthorized.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados de login inválidos", http.StatusBadRequest)
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx := repository.GetContext()
	coll := repository.Collection(repository.TeamMembersCollection)

	var member models.TeamMember
	err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&member)
	if err == mongo.ErrNoDocuments {
		cfg := config.LoadConfig()
		if email != cfg.InitialAdminEmail {
			utils.ErrorResponse(c, "não autorizado", http.StatusUnauthorized)
			return
		}
		// First sign-in of the bootstrap admin: the account is the root of
		// its own company.
		now := time.Now()
		member = models.TeamMember{
			ID:                 primitive.NewObjectID(),
			Email:              email,
			Nome:               "Administrador",
			Password:           utils.HashPassword(req.Senha),
			Role:               models.UserRoleADMIN,
			Ativo:              true,
			SubscriptionStatus: models.SubscriptionTRIAL,
			TrialStart:         now,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		member.CompanyID = member.ID.Hex()
		if _, err := coll.InsertOne(ctx, member); err != nil {
			utils.HandleError(c, err)
			return
		}
		utils.LogInfo(map[string]interface{}{"email": email}, "bootstrap admin provisioned on login")
	} else if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !utils.VerifyPassword(req.Senha, member.Password) {
		utils.ErrorResponse(c, "email ou senha incorretos", http.StatusUnauthorized)
		return
	}

	if !member.Ativo {
		utils.ErrorResponse(c, "conta desativada", http.StatusForbidden)
		return
	}

	token, err := utils.GenerateToken(&member)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"memberId": member.ID.Hex(),
		"role":     member.Role,
	}, "login")

	utils.SuccessResponse(c, models.LoginResponse{
		Token:        token,
		User:         member,
		TrialExpired: member.TrialExpired(time.Now()),
	}, "login efetuado")
}

// Register self-service signup. The new account becomes the admin of its own
// company with a fresh trial window.
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados de cadastro inválidos", http.StatusBadRequest)
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx := repository.GetContext()
	coll := repository.Collection(repository.TeamMembersCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if count > 0 {
		utils.ErrorResponse(c, "este email já está cadastrado", http.StatusConflict)
		return
	}

	now := time.Now()
	member := models.TeamMember{
		ID:                 primitive.NewObjectID(),
		Email:              email,
		Nome:               req.Nome,
		Password:           utils.HashPassword(req.Senha),
		Role:               models.UserRoleADMIN,
		Ativo:              true,
		SubscriptionStatus: models.SubscriptionTRIAL,
		TrialStart:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	member.CompanyID = member.ID.Hex()

	if _, err := coll.InsertOne(ctx, member); err != nil {
		utils.HandleError(c, err)
		return
	}

	token, err := utils.GenerateToken(&member)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, models.LoginResponse{
		Token:        token,
		User:         member,
		TrialExpired: member.TrialExpired(now),
	}, "conta criada", http.StatusCreated)
}

// Me resolves the caller's profile, recomputing trial expiry against now
func Me(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	member, err := repository.FindMemberByID(session.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":         member,
		"trialExpired": member.TrialExpired(time.Now()),
	}, "")
}
