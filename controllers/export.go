package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/service"
	"github.com/imobcrm/imobcrm_end/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// fetchExportData loads all three caller-visible arrays for an export
func fetchExportData(c *gin.Context) (*utils.Session, []models.Client, []models.Interaction, []models.Visit, bool) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return nil, nil, nil, nil, false
	}

	ctx := repository.GetContext()
	clients, err := fetchScopedClients(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return nil, nil, nil, nil, false
	}
	interactions, err := fetchScopedInteractions(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return nil, nil, nil, nil, false
	}
	visits, err := fetchScopedVisits(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return nil, nil, nil, nil, false
	}

	return session, clients, interactions, visits, true
}

// ExportXLSX streams the multi-sheet workbook of the caller-visible data
func ExportXLSX(c *gin.Context) {
	_, clients, interactions, visits, ok := fetchExportData(c)
	if !ok {
		return
	}

	workbook, err := service.BuildWorkbook(clients, interactions, visits)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer workbook.Close()

	fileName := service.ExportFileName("xlsx", time.Now())
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		utils.LogError(err, map[string]interface{}{"file": fileName}, "workbook write failed")
	}
}

// ExportCSV streams the client list as CSV
func ExportCSV(c *gin.Context) {
	_, clients, _, _, ok := fetchExportData(c)
	if !ok {
		return
	}

	data, err := service.BuildClientsCSV(clients)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	fileName := service.ExportFileName("csv", time.Now())
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportBackup returns the full structured backup of the caller-visible data
func ExportBackup(c *gin.Context) {
	_, clients, interactions, visits, ok := fetchExportData(c)
	if !ok {
		return
	}

	backup := service.BuildBackup(clients, interactions, visits, time.Now())

	fileName := service.ExportFileName("json", time.Now())
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.JSON(http.StatusOK, backup)
}
