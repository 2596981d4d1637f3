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

// GetVisitList lists visits visible to the caller, optionally narrowed to
// one client.
func GetVisitList(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	extra := bson.M{}
	if clientID := c.Query("clientId"); clientID != "" {
		extra["clientId"] = clientID
	}

	visits, err := fetchScopedVisits(repository.GetContext(), session, extra)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"visits": visits, "total": len(visits)}, "")
}

// CreateVisit records a property showing and bumps the client's visit
// counter. The counter update is a second, non-transactional write; its
// failure is logged and not reconciled.
func CreateVisit(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if session.CompanyID == "" {
		utils.HandleError(c, utils.CreateNoCompanyError())
		return
	}

	var req models.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados da visita inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, ok := findVisibleClient(c, session, req.ClientID); !ok {
		return
	}

	now := time.Now()
	if req.Data.IsZero() {
		req.Data = now
	}

	visit := models.Visit{
		ClientID:       req.ClientID,
		Data:           req.Data,
		CodigoImovel:   req.CodigoImovel,
		EnderecoImovel: req.EnderecoImovel,
		Feedback:       req.Feedback,
		CorretorID:     session.ID,
		CompanyID:      session.CompanyID,
		CreatedAt:      now,
	}

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.VisitsCollection).InsertOne(ctx, visit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	visit.ID = result.InsertedID.(primitive.ObjectID)

	if err := service.RecordVisitCreated(ctx, repository.ClientStore{}, req.ClientID, now); err != nil {
		utils.LogError(err, map[string]interface{}{
			"clientId": req.ClientID,
			"visitId":  visit.ID.Hex(),
		}, "failed to bump visit counter after visit insert")
	}

	utils.SuccessResponse(c, visit, "visita registrada", http.StatusCreated)
}

// DeleteVisit removes a visit and undoes the counter bump
func DeleteVisit(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("id de visita inválido"))
		return
	}

	ctx := repository.GetContext()
	coll := repository.Collection(repository.VisitsCollection)

	var visit models.Visit
	err = coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("visita"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !service.CanViewRecord(session, visit.CorretorID, visit.CompanyID) {
		utils.HandleError(c, utils.CreateForbiddenError())
		return
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := service.RecordVisitDeleted(ctx, repository.ClientStore{}, visit.ClientID, time.Now()); err != nil {
		utils.LogError(err, map[string]interface{}{
			"clientId": visit.ClientID,
			"visitId":  objID.Hex(),
		}, "failed to decrement visit counter after visit delete")
	}

	utils.SuccessResponse(c, nil, "visita removida")
}
