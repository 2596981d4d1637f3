package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/utils"
)

// GetTeamList lists the members of the caller's company, newest first
func GetTeamList(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repository.Collection(repository.TeamMembersCollection).
		Find(ctx, bson.M{"companyId": session.CompanyID}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"members": members, "total": len(members)}, "")
}

// CreateMember adds a member to the caller's company
func CreateMember(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if session.CompanyID == "" {
		utils.HandleError(c, utils.CreateNoCompanyError())
		return
	}

	var req models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados do membro inválidos: "+err.Error(), http.StatusBadRequest)
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

	// The company admin's id doubles as the companyId; new members share its
	// trial window instead of starting a fresh one.
	admin, err := repository.FindMemberByID(session.CompanyID)
	if err != nil {
		utils.LogError(err, map[string]interface{}{
			"companyId": session.CompanyID,
		}, "company admin lookup failed on member creation")
		admin = nil
	}

	now := time.Now()
	subscription, trialStart := models.InheritedSubscription(admin, now)
	member := models.TeamMember{
		Email:              email,
		Nome:               req.Nome,
		Password:           utils.HashPassword(req.Senha),
		Role:               req.Role,
		Ativo:              true,
		CompanyID:          session.CompanyID,
		SubscriptionStatus: subscription,
		TrialStart:         trialStart,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	result, err := coll.InsertOne(ctx, member)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	member.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"memberId": member.ID.Hex(),
		"role":     member.Role,
	}, "team member created")

	utils.SuccessResponse(c, member, "membro adicionado", http.StatusCreated)
}

// findCompanyMember loads a member by id restricted to the caller's company
func findCompanyMember(c *gin.Context, session *utils.Session, id string) (*models.TeamMember, bool) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("id de membro inválido"))
		return nil, false
	}

	var member models.TeamMember
	err = repository.Collection(repository.TeamMembersCollection).
		FindOne(repository.GetContext(), bson.M{"_id": objID, "companyId": session.CompanyID}).
		Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("membro da equipe"))
			return nil, false
		}
		utils.HandleError(c, err)
		return nil, false
	}

	return &member, true
}

// UpdateMember edits a member's name, password or role
func UpdateMember(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	member, ok := findCompanyMember(c, session, c.Param("id"))
	if !ok {
		return
	}

	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados do membro inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Nome != "" {
		update["nome"] = req.Nome
	}
	if req.Senha != "" {
		update["password"] = utils.HashPassword(req.Senha)
	}
	if req.Role != "" {
		update["role"] = req.Role
	}

	_, err = repository.Collection(repository.TeamMembersCollection).
		UpdateOne(repository.GetContext(), bson.M{"_id": member.ID}, bson.M{"$set": update})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "membro atualizado")
}

// ToggleMemberStatus flips a member's active flag
func ToggleMemberStatus(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	member, ok := findCompanyMember(c, session, c.Param("id"))
	if !ok {
		return
	}
	if member.ID.Hex() == session.ID {
		utils.ErrorResponse(c, "não é possível desativar a própria conta", http.StatusBadRequest)
		return
	}

	_, err = repository.Collection(repository.TeamMembersCollection).UpdateOne(
		repository.GetContext(),
		bson.M{"_id": member.ID},
		bson.M{"$set": bson.M{"ativo": !member.Ativo, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"ativo": !member.Ativo}, "status do membro alterado")
}

// DeleteMember removes a member from the company
func DeleteMember(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	member, ok := findCompanyMember(c, session, c.Param("id"))
	if !ok {
		return
	}
	if member.ID.Hex() == session.ID {
		utils.ErrorResponse(c, "não é possível remover a própria conta", http.StatusBadRequest)
		return
	}

	result, err := repository.Collection(repository.TeamMembersCollection).
		DeleteOne(repository.GetContext(), bson.M{"_id": member.ID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("membro da equipe"))
		return
	}

	utils.SuccessResponse(c, nil, "membro removido")
}
