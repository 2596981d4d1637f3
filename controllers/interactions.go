package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/service"
	"github.com/imobcrm/imobcrm_end/utils"
)

// GetInteractionList lists interactions visible to the caller, optionally
// narrowed to one client.
func GetInteractionList(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	extra := bson.M{}
	if clientID := c.Query("clientId"); clientID != "" {
		extra["clientId"] = clientID
	}

	interactions, err := fetchScopedInteractions(repository.GetContext(), session, extra)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"interactions": interactions, "total": len(interactions)}, "")
}

// CreateInteraction logs a contact with a client and refreshes the client's
// recency stamp. The second write is fire-and-forget: a failure is logged
// and the interaction stands.
func CreateInteraction(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if session.CompanyID == "" {
		utils.HandleError(c, utils.CreateNoCompanyError())
		return
	}

	var req models.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados da interação inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, ok := findVisibleClient(c, session, req.ClientID); !ok {
		return
	}

	now := time.Now()
	if req.Data.IsZero() {
		req.Data = now
	}

	interaction := models.Interaction{
		ClientID:   req.ClientID,
		Data:       req.Data,
		Meio:       req.Meio,
		Resumo:     req.Resumo,
		CorretorID: session.ID,
		CompanyID:  session.CompanyID,
		CreatedAt:  now,
	}

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.InteractionsCollection).InsertOne(ctx, interaction)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	interaction.ID = result.InsertedID.(primitive.ObjectID)

	if err := service.RecordInteractionCreated(ctx, repository.ClientStore{}, req.ClientID, now); err != nil {
		utils.LogError(err, map[string]interface{}{
			"clientId": req.ClientID,
		}, "failed to refresh client recency after interaction")
	}

	utils.SuccessResponse(c, interaction, "interação registrada", http.StatusCreated)
}

// DeleteInteraction removes an interaction. Only the author or an admin of
// the same company may delete it.
func DeleteInteraction(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("id de interação inválido"))
		return
	}

	ctx := repository.GetContext()
	coll := repository.Collection(repository.InteractionsCollection)

	var interaction models.Interaction
	err = coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&interaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("interação"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !service.CanViewRecord(session, interaction.CorretorID, interaction.CompanyID) {
		utils.HandleError(c, utils.CreateForbiddenError())
		return
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "interação removida")
}
