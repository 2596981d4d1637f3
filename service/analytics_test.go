package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobcrm/imobcrm_end/models"
)

func clientWithStatus(status models.JourneyStatus) models.Client {
	return models.Client{StatusJornada: status}
}

func TestConversionRate(t *testing.T) {
	clients := []models.Client{}
	for i := 0; i < 3; i++ {
		clients = append(clients, clientWithStatus(models.JourneyComprouComigo))
	}
	for i := 0; i < 7; i++ {
		clients = append(clients, clientWithStatus(models.JourneyEmJornada))
	}

	assert.Equal(t, 30.0, ConversionRate(clients))
	assert.Equal(t, 0.0, ConversionRate(nil))
}

func TestConversionRateRounding(t *testing.T) {
	clients := []models.Client{
		clientWithStatus(models.JourneyComprouComigo),
		clientWithStatus(models.JourneyEmJornada),
		clientWithStatus(models.JourneyEmJornada),
	}
	// 1/3 = 33.333... rounds to one decimal
	assert.Equal(t, 33.3, ConversionRate(clients))
}

func TestLossRate(t *testing.T) {
	clients := []models.Client{}
	for i := 0; i < 2; i++ {
		clients = append(clients, clientWithStatus(models.JourneyDesistiu))
	}
	clients = append(clients, clientWithStatus(models.JourneyComprouConcorrencia))
	for i := 0; i < 7; i++ {
		clients = append(clients, clientWithStatus(models.JourneyEmJornada))
	}

	assert.Equal(t, 30.0, LossRate(clients))
	assert.Equal(t, 0.0, LossRate(nil))
}

func TestTemperatureDistributionPartitionsInput(t *testing.T) {
	clients := []models.Client{
		{Temperatura: models.TemperatureQUENTE},
		{Temperatura: models.TemperatureQUENTE},
		{Temperatura: models.TemperatureMORNO},
		{Temperatura: models.TemperatureFRIO},
	}

	dist := TemperatureDistribution(clients)
	require.Len(t, dist, 3)
	assert.Equal(t, models.ChartDataItem{Name: "Quente", Value: 2}, dist[0])
	assert.Equal(t, models.ChartDataItem{Name: "Morno", Value: 1}, dist[1])
	assert.Equal(t, models.ChartDataItem{Name: "Frio", Value: 1}, dist[2])

	total := 0
	for _, item := range dist {
		total += item.Value
	}
	assert.Equal(t, len(clients), total)
}

func TestStatusDistribution(t *testing.T) {
	clients := []models.Client{
		clientWithStatus(models.JourneyEmJornada),
		clientWithStatus(models.JourneyEmJornada),
		clientWithStatus(models.JourneyComprouComigo),
	}

	dist := StatusDistribution(clients)
	require.Len(t, dist, 5)
	assert.Equal(t, "Em Jornada", dist[0].Name)
	assert.Equal(t, 2, dist[0].Value)
	assert.Equal(t, "Comprou Comigo", dist[3].Name)
	assert.Equal(t, 1, dist[3].Value)
	assert.Equal(t, 0, dist[1].Value)
}

func TestChannelHistogram(t *testing.T) {
	clients := []models.Client{
		{Canal: "Instagram"},
		{Canal: "Instagram"},
		{Canal: "Indicação"},
		{Canal: ""},
	}

	hist := ChannelHistogram(clients)
	require.Len(t, hist, 3)
	assert.Equal(t, models.ChartDataItem{Name: "Instagram", Value: 2}, hist[0])
	// ties broken alphabetically
	assert.Equal(t, models.ChartDataItem{Name: "Indicação", Value: 1}, hist[1])
	assert.Equal(t, models.ChartDataItem{Name: "Outros", Value: 1}, hist[2])
}

func TestChannelEffectivenessTopSix(t *testing.T) {
	channels := []string{"A", "B", "C", "D", "E", "F", "G"}
	var clients []models.Client
	for i, canal := range channels {
		// channel i gets i+1 clients, first one converted
		for j := 0; j <= i; j++ {
			c := models.Client{Canal: canal, StatusJornada: models.JourneyEmJornada}
			if j == 0 {
				c.StatusJornada = models.JourneyComprouComigo
			}
			clients = append(clients, c)
		}
	}

	stats := ChannelEffectiveness(clients)
	require.Len(t, stats, 6)
	assert.Equal(t, "G", stats[0].Name)
	assert.Equal(t, 7, stats[0].Total)
	assert.Equal(t, 1, stats[0].Convertidos)
	assert.Equal(t, 14, stats[0].Taxa)
	// lowest-volume channel dropped
	for _, s := range stats {
		assert.NotEqual(t, "A", s.Name)
	}
}

func TestAvgDaysToConversion(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mk := func(days int, status models.JourneyStatus) models.Client {
		return models.Client{
			StatusJornada:     status,
			DataCadastro:      now.AddDate(0, 0, -days),
			UltimaAtualizacao: now,
		}
	}

	clients := []models.Client{
		mk(10, models.JourneyComprouComigo),
		mk(20, models.JourneyComprouComigo),
		mk(30, models.JourneyComprouComigo),
		mk(300, models.JourneyEmJornada), // ignored, not won
	}

	assert.Equal(t, 20, AvgDaysToConversion(clients))
	assert.Equal(t, 0, AvgDaysToConversion(nil))
}

func TestFunnel(t *testing.T) {
	clients := []models.Client{
		{StatusJornada: models.JourneyEmJornada, Temperatura: models.TemperatureQUENTE, QtdeVisitas: 2},
		{StatusJornada: models.JourneyEmJornada, Temperatura: models.TemperatureFRIO},
		{StatusJornada: models.JourneyComprouComigo, Temperatura: models.TemperatureQUENTE, QtdeVisitas: 1},
		{StatusJornada: models.JourneyDesistiu, Temperatura: models.TemperatureMORNO},
	}

	funnel := Funnel(clients)
	require.Len(t, funnel, 5)

	assert.Equal(t, models.FunnelStage{Name: "Leads Captados", Value: 4, Percentage: 100}, funnel[0])
	assert.Equal(t, models.FunnelStage{Name: "Em Jornada", Value: 2, Percentage: 50}, funnel[1])
	assert.Equal(t, models.FunnelStage{Name: "Quentes", Value: 2, Percentage: 50}, funnel[2])
	assert.Equal(t, models.FunnelStage{Name: "Com Visitas", Value: 2, Percentage: 50}, funnel[3])
	assert.Equal(t, models.FunnelStage{Name: "Fechados", Value: 1, Percentage: 25}, funnel[4])
}

func TestFunnelEmpty(t *testing.T) {
	funnel := Funnel(nil)
	require.Len(t, funnel, 5)
	for _, stage := range funnel {
		assert.Zero(t, stage.Value)
		assert.Zero(t, stage.Percentage)
	}
}

func TestOxygenationPartitionsClients(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mk := func(days int) models.Client {
		return models.Client{UltimaAtualizacao: now.AddDate(0, 0, -days)}
	}

	clients := []models.Client{
		mk(0), mk(7), // oxigenados
		mk(8), mk(15), // atenção
		mk(16), mk(90), // inativos
	}

	split := Oxygenation(clients, now)
	assert.Equal(t, 2, split.Oxigenados)
	assert.Equal(t, 2, split.Atencao)
	assert.Equal(t, 2, split.Inativos)
	assert.Equal(t, len(clients), split.Oxigenados+split.Atencao+split.Inativos)
}

func TestRecentLeadsAndInactive(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clients := []models.Client{
		{DataCadastro: now.AddDate(0, 0, -10), UltimaAtualizacao: now.AddDate(0, 0, -2)},
		{DataCadastro: now.AddDate(0, 0, -59), UltimaAtualizacao: now.AddDate(0, 0, -20)},
		{DataCadastro: now.AddDate(0, 0, -90), UltimaAtualizacao: now.AddDate(0, 0, -40)},
	}

	assert.Equal(t, 2, RecentLeads(clients, now))
	assert.Equal(t, 2, InactiveClients(clients, now))
}

func TestDailyActivity30(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	interactions := []models.Interaction{
		{Data: now},
		{Data: now.AddDate(0, 0, -1)},
		{Data: now.AddDate(0, 0, -45)}, // out of window
	}
	visits := []models.Visit{
		{Data: now},
	}

	series := DailyActivity30(interactions, visits, now)
	require.Len(t, series, 30)

	last := series[29]
	assert.Equal(t, "31/08", last.Date)
	assert.Equal(t, 1, last.Interacoes)
	assert.Equal(t, 1, last.Visitas)

	assert.Equal(t, "30/08", series[28].Date)
	assert.Equal(t, 1, series[28].Interacoes)

	totalInteracoes := 0
	for _, d := range series {
		totalInteracoes += d.Interacoes
	}
	assert.Equal(t, 2, totalInteracoes)
}

func TestWeekdayActivity(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	interactions := []models.Interaction{
		{Data: sunday},
		{Data: sunday.AddDate(0, 0, 1)}, // monday
	}
	visits := []models.Visit{
		{Data: sunday.AddDate(0, 0, 6)}, // saturday
	}

	series := WeekdayActivity(interactions, visits)
	require.Len(t, series, 7)
	assert.Equal(t, "Dom", series[0].Dia)
	assert.Equal(t, 1, series[0].Interacoes)
	assert.Equal(t, "Seg", series[1].Dia)
	assert.Equal(t, 1, series[1].Interacoes)
	assert.Equal(t, "Sáb", series[6].Dia)
	assert.Equal(t, 1, series[6].Visitas)
}

func TestMonthlyPerformance6(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	clients := []models.Client{
		{
			DataCadastro:      time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
			UltimaAtualizacao: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			StatusJornada:     models.JourneyComprouComigo,
		},
		{
			DataCadastro:  time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			StatusJornada: models.JourneyEmJornada,
		},
		{
			// before the window, ignored
			DataCadastro:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			StatusJornada: models.JourneyEmJornada,
		},
	}

	series := MonthlyPerformance6(clients, now)
	require.NotEmpty(t, series)
	assert.Equal(t, "mar", series[0].Mes)

	byMonth := map[string]models.MonthlyPerformance{}
	for _, m := range series {
		byMonth[m.Mes] = m
	}
	assert.Equal(t, 1, byMonth["ago"].Leads)
	assert.Equal(t, 1, byMonth["ago"].Fechamentos)
	assert.Equal(t, 1, byMonth["jun"].Leads)
	assert.Equal(t, 0, byMonth["jun"].Fechamentos)
}
