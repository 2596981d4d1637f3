package service

import (
	"math"
	"sort"
	"time"

	"github.com/imobcrm/imobcrm_end/models"
)

// All computations in this file are pure scans over the arrays already
// loaded for the caller's scope. Empty inputs yield zeroes, never NaN.

var temperatureLabels = map[models.Temperature]string{
	models.TemperatureQUENTE: "Quente",
	models.TemperatureMORNO:  "Morno",
	models.TemperatureFRIO:   "Frio",
}

var statusLabels = map[models.JourneyStatus]string{
	models.JourneyEmJornada:           "Em Jornada",
	models.JourneyPausa:               "Pausa",
	models.JourneyDesistiu:            "Desistiu",
	models.JourneyComprouComigo:       "Comprou Comigo",
	models.JourneyComprouConcorrencia: "Comprou na Concorrência",
}

var meioLabels = map[models.InteractionChannel]string{
	models.InteractionWhatsapp:   "WhatsApp",
	models.InteractionLigacao:    "Ligação",
	models.InteractionEmail:      "Email",
	models.InteractionPresencial: "Presencial",
}

var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

var weekdayAbbrev = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// TemperatureLabel display label for a temperature value
func TemperatureLabel(t models.Temperature) string {
	if label, ok := temperatureLabels[t]; ok {
		return label
	}
	return string(t)
}

// StatusLabel display label for a journey status
func StatusLabel(s models.JourneyStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// MeioLabel display label for an interaction channel
func MeioLabel(m models.InteractionChannel) string {
	if label, ok := meioLabels[m]; ok {
		return label
	}
	return string(m)
}

// daysSince whole 24h periods elapsed between then and now
func daysSince(now, then time.Time) int {
	return int(now.Sub(then).Hours() / 24)
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func countStatus(clients []models.Client, status models.JourneyStatus) int {
	n := 0
	for _, c := range clients {
		if c.StatusJornada == status {
			n++
		}
	}
	return n
}

// TemperatureDistribution hot/warm/cold counts. The three buckets partition
// the input.
func TemperatureDistribution(clients []models.Client) []models.ChartDataItem {
	counts := map[models.Temperature]int{}
	for _, c := range clients {
		counts[c.Temperatura]++
	}
	return []models.ChartDataItem{
		{Name: "Quente", Value: counts[models.TemperatureQUENTE]},
		{Name: "Morno", Value: counts[models.TemperatureMORNO]},
		{Name: "Frio", Value: counts[models.TemperatureFRIO]},
	}
}

// StatusDistribution counts per journey status
func StatusDistribution(clients []models.Client) []models.ChartDataItem {
	order := []models.JourneyStatus{
		models.JourneyEmJornada,
		models.JourneyPausa,
		models.JourneyDesistiu,
		models.JourneyComprouComigo,
		models.JourneyComprouConcorrencia,
	}
	items := make([]models.ChartDataItem, 0, len(order))
	for _, status := range order {
		items = append(items, models.ChartDataItem{
			Name:  StatusLabel(status),
			Value: countStatus(clients, status),
		})
	}
	return items
}

// ConversionRate percentage of clients that closed, 0 for an empty input
func ConversionRate(clients []models.Client) float64 {
	total := len(clients)
	if total == 0 {
		return 0
	}
	won := countStatus(clients, models.JourneyComprouComigo)
	return round1(float64(won) / float64(total) * 100)
}

// LossRate percentage of clients lost outright or to a competitor
func LossRate(clients []models.Client) float64 {
	total := len(clients)
	if total == 0 {
		return 0
	}
	lost := countStatus(clients, models.JourneyDesistiu) +
		countStatus(clients, models.JourneyComprouConcorrencia)
	return round1(float64(lost) / float64(total) * 100)
}

// ClosedSales number of clients that closed with us
func ClosedSales(clients []models.Client) int {
	return countStatus(clients, models.JourneyComprouComigo)
}

// AvgDaysToConversion mean days from registration to the closing update,
// over won clients only
func AvgDaysToConversion(clients []models.Client) int {
	totalDays := 0
	won := 0
	for _, c := range clients {
		if c.StatusJornada != models.JourneyComprouComigo {
			continue
		}
		totalDays += daysSince(c.UltimaAtualizacao, c.DataCadastro)
		won++
	}
	if won == 0 {
		return 0
	}
	return int(math.Round(float64(totalDays) / float64(won)))
}

// ChannelHistogram acquisition channel counts, descending by count.
// Clients without a channel fall under "Outros".
func ChannelHistogram(clients []models.Client) []models.ChartDataItem {
	counts := map[string]int{}
	for _, c := range clients {
		canal := c.Canal
		if canal == "" {
			canal = "Outros"
		}
		counts[canal]++
	}

	items := make([]models.ChartDataItem, 0, len(counts))
	for name, value := range counts {
		items = append(items, models.ChartDataItem{Name: name, Value: value})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// ChannelEffectiveness per-channel totals, conversions and conversion rate,
// top 6 channels by volume
func ChannelEffectiveness(clients []models.Client) []models.ChannelStat {
	type agg struct {
		total       int
		convertidos int
	}
	byChannel := map[string]*agg{}
	for _, c := range clients {
		canal := c.Canal
		if canal == "" {
			canal = "Outros"
		}
		a, ok := byChannel[canal]
		if !ok {
			a = &agg{}
			byChannel[canal] = a
		}
		a.total++
		if c.StatusJornada == models.JourneyComprouComigo {
			a.convertidos++
		}
	}

	stats := make([]models.ChannelStat, 0, len(byChannel))
	for name, a := range byChannel {
		taxa := 0
		if a.total > 0 {
			taxa = int(math.Round(float64(a.convertidos) / float64(a.total) * 100))
		}
		stats = append(stats, models.ChannelStat{
			Name:        name,
			Total:       a.total,
			Convertidos: a.convertidos,
			Taxa:        taxa,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > 6 {
		stats = stats[:6]
	}
	return stats
}

// Funnel lead funnel: captured, in journey, hot, visited, closed
func Funnel(clients []models.Client) []models.FunnelStage {
	total := len(clients)
	pct := func(n int) int {
		if total == 0 {
			return 0
		}
		return int(math.Round(float64(n) / float64(total) * 100))
	}

	emJornada := countStatus(clients, models.JourneyEmJornada)
	quentes := 0
	comVisitas := 0
	for _, c := range clients {
		if c.Temperatura == models.TemperatureQUENTE {
			quentes++
		}
		if c.QtdeVisitas > 0 {
			comVisitas++
		}
	}
	fechados := countStatus(clients, models.JourneyComprouComigo)

	stages := []models.FunnelStage{
		{Name: "Leads Captados", Value: total, Percentage: 100},
		{Name: "Em Jornada", Value: emJornada, Percentage: pct(emJornada)},
		{Name: "Quentes", Value: quentes, Percentage: pct(quentes)},
		{Name: "Com Visitas", Value: comVisitas, Percentage: pct(comVisitas)},
		{Name: "Fechados", Value: fechados, Percentage: pct(fechados)},
	}
	if total == 0 {
		stages[0].Percentage = 0
	}
	return stages
}

// Oxygenation recency-of-contact partition relative to now: every client
// lands in exactly one bucket.
func Oxygenation(clients []models.Client, now time.Time) models.OxygenationSplit {
	var split models.OxygenationSplit
	for _, c := range clients {
		days := daysSince(now, c.UltimaAtualizacao)
		switch {
		case days <= 7:
			split.Oxigenados++
		case days <= 15:
			split.Atencao++
		default:
			split.Inativos++
		}
	}
	return split
}

// RecentLeads clients registered within the last 60 days
func RecentLeads(clients []models.Client, now time.Time) int {
	n := 0
	for _, c := range clients {
		if daysSince(now, c.DataCadastro) <= 60 {
			n++
		}
	}
	return n
}

// InactiveClients clients without contact for more than 15 days
func InactiveClients(clients []models.Client, now time.Time) int {
	n := 0
	for _, c := range clients {
		if daysSince(now, c.UltimaAtualizacao) > 15 {
			n++
		}
	}
	return n
}

// sameDay calendar-day equality
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DailyActivity30 interactions and visits per calendar day over the last 30
// days ending today
func DailyActivity30(interactions []models.Interaction, visits []models.Visit, now time.Time) []models.DailyActivity {
	series := make([]models.DailyActivity, 0, 30)
	for offset := 29; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		entry := models.DailyActivity{Date: day.Format("02/01")}
		for _, i := range interactions {
			if sameDay(i.Data, day) {
				entry.Interacoes++
			}
		}
		for _, v := range visits {
			if sameDay(v.Data, day) {
				entry.Visitas++
			}
		}
		series = append(series, entry)
	}
	return series
}

// WeekdayActivity interactions and visits bucketed by weekday, Sunday first
func WeekdayActivity(interactions []models.Interaction, visits []models.Visit) []models.WeekdayActivity {
	series := make([]models.WeekdayActivity, 7)
	for i := range series {
		series[i].Dia = weekdayAbbrev[i]
	}
	for _, it := range interactions {
		series[int(it.Data.Weekday())].Interacoes++
	}
	for _, v := range visits {
		series[int(v.Data.Weekday())].Visitas++
	}
	return series
}

// MonthlyPerformance6 new leads and closings per calendar month over the
// months touched by the last 180 days. Leads bucket by registration date,
// closings by the last update of won clients.
func MonthlyPerformance6(clients []models.Client, now time.Time) []models.MonthlyPerformance {
	start := now.AddDate(0, 0, -180)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())

	var series []models.MonthlyPerformance
	for month := first; !month.After(now); month = month.AddDate(0, 1, 0) {
		monthStart := month
		monthEnd := month.AddDate(0, 1, 0)

		entry := models.MonthlyPerformance{Mes: monthAbbrev[int(month.Month())-1]}
		for _, c := range clients {
			if !c.DataCadastro.Before(monthStart) && c.DataCadastro.Before(monthEnd) {
				entry.Leads++
			}
			if c.StatusJornada == models.JourneyComprouComigo &&
				!c.UltimaAtualizacao.Before(monthStart) && c.UltimaAtualizacao.Before(monthEnd) {
				entry.Fechamentos++
			}
		}
		series = append(series, entry)
	}
	return series
}
