package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/utils"
)

// recipientFilter notifications addressed to this member or broadcast to
// the whole company
func recipientFilter(session *utils.Session) bson.M {
	return bson.M{
		"companyId":      session.CompanyID,
		"destinatarioId": bson.M{"$in": []string{models.BroadcastRecipient, session.ID}},
	}
}

// GetNotificationList lists the caller's notifications, newest first, with
// the unread count.
func GetNotificationList(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if session.CompanyID == "" {
		utils.HandleError(c, utils.CreateNoCompanyError())
		return
	}

	ctx := repository.GetContext()
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repository.Collection(repository.NotificationsCollection).
		Find(ctx, recipientFilter(session), opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		utils.HandleError(c, err)
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.Lida {
			unread++
		}
	}

	utils.SuccessResponse(c, gin.H{
		"notifications": notifications,
		"unreadCount":   unread,
	}, "")
}

// SendNotification sends a message to one member or broadcasts to the
// whole company. Admin only.
func SendNotification(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if session.CompanyID == "" {
		utils.HandleError(c, utils.CreateNoCompanyError())
		return
	}

	var req models.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "dados da notificação inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	notification := models.Notification{
		Titulo:         req.Titulo,
		Mensagem:       req.Mensagem,
		Tipo:           req.Tipo,
		DestinatarioID: req.DestinatarioID,
		RemetenteID:    session.ID,
		RemetenteNome:  session.Nome,
		CompanyID:      session.CompanyID,
		Lida:           false,
		CreatedAt:      time.Now(),
	}

	result, err := repository.Collection(repository.NotificationsCollection).
		InsertOne(repository.GetContext(), notification)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)

	utils.SuccessResponse(c, notification, "notificação enviada", http.StatusCreated)
}

// MarkNotificationRead marks one of the caller's notifications as read
func MarkNotificationRead(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("id de notificação inválido"))
		return
	}

	filter := recipientFilter(session)
	filter["_id"] = objID

	result, err := repository.Collection(repository.NotificationsCollection).
		UpdateOne(repository.GetContext(), filter, bson.M{"$set": bson.M{"lida": true}})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("notificação"))
		return
	}

	utils.SuccessResponse(c, nil, "notificação lida")
}

// MarkAllNotificationsRead marks every unread notification of the caller as
// read.
func MarkAllNotificationsRead(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filter := recipientFilter(session)
	filter["lida"] = false

	result, err := repository.Collection(repository.NotificationsCollection).
		UpdateMany(repository.GetContext(), filter, bson.M{"$set": bson.M{"lida": true}})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"updated": result.ModifiedCount}, "notificações lidas")
}
