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

// UploadReceipt stores a proof-of-payment image as a pending receipt. The
// image arrives as a base64 data URI and is kept on the document itself.
func UploadReceipt(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req models.UploadReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "comprovante inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !strings.HasPrefix(req.ImageData, "data:image/") {
		utils.ErrorResponse(c, "comprovante deve ser uma imagem", http.StatusBadRequest)
		return
	}

	receipt := models.PaymentReceipt{
		UserID:    session.ID,
		CompanyID: session.CompanyID,
		ImageData: req.ImageData,
		Status:    models.ReceiptPending,
		CreatedAt: time.Now(),
	}

	result, err := repository.Collection(repository.PaymentReceiptsCollection).
		InsertOne(repository.GetContext(), receipt)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	receipt.ID = result.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"receiptId": receipt.ID.Hex(),
		"userId":    session.ID,
	}, "payment receipt uploaded")

	utils.SuccessResponse(c, receipt, "comprovante enviado", http.StatusCreated)
}

// GetReceiptList lists the company's receipts for review, joined with the
// uploader's name and email. Admin only.
func GetReceiptList(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := repository.Collection(repository.PaymentReceiptsCollection).
		Find(ctx, bson.M{"companyId": session.CompanyID}, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var receipts []models.PaymentReceipt
	if err := cursor.All(ctx, &receipts); err != nil {
		utils.HandleError(c, err)
		return
	}

	// Resolve uploader identities in one query.
	idSet := map[string]bool{}
	for _, r := range receipts {
		idSet[r.UserID] = true
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		if objID, err := primitive.ObjectIDFromHex(id); err == nil {
			ids = append(ids, objID)
		}
	}

	memberByID := map[string]models.TeamMember{}
	if len(ids) > 0 {
		memberCursor, err := repository.Collection(repository.TeamMembersCollection).
			Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		defer memberCursor.Close(ctx)

		var members []models.TeamMember
		if err := memberCursor.All(ctx, &members); err != nil {
			utils.HandleError(c, err)
			return
		}
		for _, m := range members {
			memberByID[m.ID.Hex()] = m
		}
	}

	pending := 0
	for i := range receipts {
		if m, ok := memberByID[receipts[i].UserID]; ok {
			receipts[i].UserName = m.Nome
			receipts[i].UserEmail = m.Email
		}
		if receipts[i].Status == models.ReceiptPending {
			pending++
		}
	}

	utils.SuccessResponse(c, gin.H{
		"receipts":     receipts,
		"pendingCount": pending,
	}, "")
}

// findCompanyReceipt loads a receipt restricted to the caller's company
func findCompanyReceipt(c *gin.Context, session *utils.Session, id string) (*models.PaymentReceipt, bool) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("id de comprovante inválido"))
		return nil, false
	}

	var receipt models.PaymentReceipt
	err = repository.Collection(repository.PaymentReceiptsCollection).
		FindOne(repository.GetContext(), bson.M{"_id": objID, "companyId": session.CompanyID}).
		Decode(&receipt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("comprovante"))
			return nil, false
		}
		utils.HandleError(c, err)
		return nil, false
	}

	return &receipt, true
}

// setMemberSubscription updates the uploader's subscription state after a
// review decision. A failure leaves the receipt reviewed but the member
// unchanged; that is logged, not rolled back.
func setMemberSubscription(userID string, status models.SubscriptionStatus) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"userId": userID}, "invalid member id on receipt review")
		return
	}
	_, err = repository.Collection(repository.TeamMembersCollection).UpdateOne(
		repository.GetContext(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"subscriptionStatus": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.LogError(err, map[string]interface{}{
			"userId": userID,
			"status": status,
		}, "failed to update member subscription after receipt review")
	}
}

// ApproveReceipt approves a pending receipt and activates the uploader's
// subscription. Admin only.
func ApproveReceipt(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	receipt, ok := findCompanyReceipt(c, session, c.Param("id"))
	if !ok {
		return
	}
	if receipt.Status != models.ReceiptPending {
		utils.ErrorResponse(c, "comprovante já revisado", http.StatusConflict)
		return
	}

	now := time.Now()
	_, err = repository.Collection(repository.PaymentReceiptsCollection).UpdateOne(
		repository.GetContext(),
		bson.M{"_id": receipt.ID},
		bson.M{"$set": bson.M{
			"status":     models.ReceiptApproved,
			"reviewedAt": now,
			"reviewedBy": session.ID,
		}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	setMemberSubscription(receipt.UserID, models.SubscriptionACTIVE)

	utils.SuccessResponse(c, nil, "comprovante aprovado")
}

// RejectReceipt rejects a pending receipt with a reason and expires the
// uploader's subscription. Admin only.
func RejectReceipt(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	receipt, ok := findCompanyReceipt(c, session, c.Param("id"))
	if !ok {
		return
	}
	if receipt.Status != models.ReceiptPending {
		utils.ErrorResponse(c, "comprovante já revisado", http.StatusConflict)
		return
	}

	var req models.RejectReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "motivo da rejeição é obrigatório", http.StatusBadRequest)
		return
	}

	now := time.Now()
	_, err = repository.Collection(repository.PaymentReceiptsCollection).UpdateOne(
		repository.GetContext(),
		bson.M{"_id": receipt.ID},
		bson.M{"$set": bson.M{
			"status":       models.ReceiptRejected,
			"rejectReason": req.Reason,
			"reviewedAt":   now,
			"reviewedBy":   session.ID,
		}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	setMemberSubscription(receipt.UserID, models.SubscriptionEXPIRED)

	utils.SuccessResponse(c, nil, "comprovante rejeitado")
}
