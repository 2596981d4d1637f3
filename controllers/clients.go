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

// GetClientList lists the clients visible to the caller, with optional
// filters on keyword, temperature, journey status and channel.
func GetClientList(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	extra := bson.M{}
	if keyword := c.Query("keyword"); keyword != "" {
		extra["$or"] = []bson.M{
			{"nome": bson.M{"$regex": keyword, "$options": "i"}},
			{"telefone": bson.M{"$regex": keyword, "$options": "i"}},
			{"perfilBusca": bson.M{"$regex": keyword, "$options": "i"}},
		}
	}
	if temperatura := c.Query("temperatura"); temperatura != "" {
		extra["temperatura"] = temperatura
	}
	if status := c.Query("statusJornada"); status != "" {
		extra["statusJornada"] = status
	}
	if canal := c.Query("canal"); canal != "" {
		extra["canal"] = canal
	}

	clients, err := fetchScopedClients(repository.GetContext(), session, extra)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"clients": clients, "total": len(clients)}, "")
}

// CreateClient registers a lead owned by the caller and scoped to their company
func CreateClient(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if session.CompanyID == "" {
		utils.HandleError(c, utils.CreateNoCompanyError())
		return
	}

	var req models.ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados do cliente inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	if req.DataCadastro.IsZero() {
		req.DataCadastro = now
	}
	if req.DataChegada.IsZero() {
		req.DataChegada = req.DataCadastro
	}
	if req.StatusJornada == "" {
		req.StatusJornada = models.JourneyEmJornada
	}

	client := models.Client{
		Nome:              req.Nome,
		Telefone:          req.Telefone,
		DataCadastro:      req.DataCadastro,
		DataChegada:       req.DataChegada,
		Canal:             req.Canal,
		PerfilBusca:       req.PerfilBusca,
		Budget:            req.Budget,
		Observacoes:       req.Observacoes,
		Temperatura:       req.Temperatura,
		StatusJornada:     req.StatusJornada,
		UltimaAtualizacao: now,
		QtdeVisitas:       0,
		Quartos:           req.Quartos,
		Banheiros:         req.Banheiros,
		Vagas:             req.Vagas,
		CorretorID:        session.ID,
		CompanyID:         session.CompanyID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	result, err := repository.Collection(repository.ClientsCollection).
		InsertOne(repository.GetContext(), client)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	client.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"clientId": client.ID.Hex(),
		"corretor": session.ID,
	}, "client created")

	utils.SuccessResponse(c, client, "cliente cadastrado", http.StatusCreated)
}

// findVisibleClient loads a client by id and checks the caller may see it
func findVisibleClient(c *gin.Context, session *utils.Session, id string) (*models.Client, bool) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("id de cliente inválido"))
		return nil, false
	}

	var client models.Client
	err = repository.Collection(repository.ClientsCollection).
		FindOne(repository.GetContext(), bson.M{"_id": objID}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("cliente"))
			return nil, false
		}
		utils.HandleError(c, err)
		return nil, false
	}

	if !service.CanViewRecord(session, client.CorretorID, client.CompanyID) {
		utils.HandleError(c, utils.CreateForbiddenError())
		return nil, false
	}

	return &client, true
}

// GetClientDetail returns one client with its timeline
func GetClientDetail(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	client, ok := findVisibleClient(c, session, c.Param("id"))
	if !ok {
		return
	}

	ctx := repository.GetContext()
	interactions, err := fetchScopedInteractions(ctx, session, bson.M{"clientId": client.ID.Hex()})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	visits, err := fetchScopedVisits(ctx, session, bson.M{"clientId": client.ID.Hex()})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"client":       client,
		"interactions": interactions,
		"visits":       visits,
	}, "")
}

// UpdateClient applies a partial update. Ownership and company fields are
// never writable, and moving a client to "comprou_comigo" goes through the
// sale-capture flow, which refuses the transition without sale data.
func UpdateClient(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	client, ok := findVisibleClient(c, session, c.Param("id"))
	if !ok {
		return
	}

	var req models.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados do cliente inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	update := bson.M{"updatedAt": now}

	if req.Nome != "" {
		update["nome"] = req.Nome
	}
	if req.Telefone != "" {
		update["telefone"] = req.Telefone
	}
	if req.DataCadastro != nil {
		update["dataCadastro"] = *req.DataCadastro
	}
	if req.DataChegada != nil {
		update["dataChegada"] = *req.DataChegada
	}
	if req.Canal != "" {
		update["canal"] = req.Canal
	}
	if req.PerfilBusca != nil {
		update["perfilBusca"] = *req.PerfilBusca
	}
	if req.Budget != nil {
		update["budget"] = *req.Budget
	}
	if req.Observacoes != nil {
		update["observacoes"] = *req.Observacoes
	}
	if req.Temperatura != "" {
		update["temperatura"] = req.Temperatura
	}
	if req.Quartos != nil {
		update["quartos"] = *req.Quartos
	}
	if req.Banheiros != nil {
		update["banheiros"] = *req.Banheiros
	}
	if req.Vagas != nil {
		update["vagas"] = *req.Vagas
	}

	if req.StatusJornada != "" && req.StatusJornada != client.StatusJornada {
		if req.StatusJornada == models.JourneyComprouComigo {
			flow := service.NewSaleFlow(client.StatusJornada)
			if err := flow.RequestWon(); err != nil {
				utils.ErrorResponse(c, err.Error(), http.StatusConflict)
				return
			}
			status, dados, err := flow.Confirm(req.DadosVenda)
			if err != nil {
				utils.ErrorResponse(c, err.Error(), http.StatusBadRequest)
				return
			}
			update["statusJornada"] = status
			update["dadosVenda"] = dados
		} else {
			update["statusJornada"] = req.StatusJornada
		}
		update["ultimaAtualizacao"] = now
	} else if req.DadosVenda != nil && client.StatusJornada == models.JourneyComprouComigo {
		// Editing the sale record of an already-closed client.
		update["dadosVenda"] = req.DadosVenda
	}

	service.StripImmutableFields(update)

	_, err = repository.Collection(repository.ClientsCollection).UpdateOne(
		repository.GetContext(),
		bson.M{"_id": client.ID},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var updated models.Client
	err = repository.Collection(repository.ClientsCollection).
		FindOne(repository.GetContext(), bson.M{"_id": client.ID}).Decode(&updated)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, updated, "cliente atualizado")
}

// DeleteClient removes a client. Timeline records are left in place; only
// the denormalized counters lived on the client itself.
func DeleteClient(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	client, ok := findVisibleClient(c, session, c.Param("id"))
	if !ok {
		return
	}

	result, err := repository.Collection(repository.ClientsCollection).
		DeleteOne(repository.GetContext(), bson.M{"_id": client.ID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("cliente"))
		return
	}

	utils.LogInfo(map[string]interface{}{"clientId": client.ID.Hex()}, "client deleted")
	utils.SuccessResponse(c, nil, "cliente removido")
}
