package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/repository"
	"github.com/imobcrm/imobcrm_end/service"
	"github.com/imobcrm/imobcrm_end/utils"
)

// GetDashboardStats computes the main dashboard from the caller-visible
// arrays. Everything derives in memory from the three fetches.
func GetDashboardStats(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	clients, err := fetchScopedClients(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	interactions, err := fetchScopedInteractions(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	visits, err := fetchScopedVisits(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	channels := service.ChannelHistogram(clients)
	if len(channels) > 5 {
		channels = channels[:5]
	}

	response := models.DashboardResponse{
		TotalClients:    len(clients),
		RecentLeads:     service.RecentLeads(clients, now),
		InactiveClients: service.InactiveClients(clients, now),
		Temperature:     service.TemperatureDistribution(clients),
		Status:          service.StatusDistribution(clients),
		Channels:        channels,
		Activity30Days:  service.DailyActivity30(interactions, visits, now),
		Oxygenation:     service.Oxygenation(clients, now),
	}

	utils.SuccessResponse(c, response, "")
}

// GetAnalytics computes the analytics page: funnel, conversion and loss
// rates, channel effectiveness and time-bucketed performance.
func GetAnalytics(c *gin.Context) {
	session, err := utils.GetSession(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	clients, err := fetchScopedClients(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	interactions, err := fetchScopedInteractions(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	visits, err := fetchScopedVisits(ctx, session, bson.M{})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	now := time.Now()
	response := models.AnalyticsResponse{
		Funnel:              service.Funnel(clients),
		TaxaConversao:       service.ConversionRate(clients),
		TaxaPerda:           service.LossRate(clients),
		VendasFechadas:      service.ClosedSales(clients),
		TempoMedioConversao: service.AvgDaysToConversion(clients),
		Canais:              service.ChannelEffectiveness(clients),
		Temperature:         service.TemperatureDistribution(clients),
		MonthlyPerformance:  service.MonthlyPerformance6(clients, now),
		WeekdayActivity:     service.WeekdayActivity(interactions, visits),
	}

	utils.SuccessResponse(c, response, "")
}
