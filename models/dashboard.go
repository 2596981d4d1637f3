package models

// ChartDataItem generic name/value pair for chart series
type ChartDataItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FunnelStage one stage of the sales funnel
type FunnelStage struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"` // share of captured leads
}

// ChannelStat acquisition channel effectiveness
type ChannelStat struct {
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Convertidos int    `json:"convertidos"`
	Taxa        int    `json:"taxa"` // conversion %, rounded
}

// DailyActivity interactions/visits bucketed by calendar day
type DailyActivity struct {
	Date       string `json:"date"` // dd/MM
	Interacoes int    `json:"interacoes"`
	Visitas    int    `json:"visitas"`
}

// WeekdayActivity interactions/visits bucketed by weekday
type WeekdayActivity struct {
	Dia        string `json:"dia"`
	Interacoes int    `json:"interacoes"`
	Visitas    int    `json:"visitas"`
}

// MonthlyPerformance new leads and closings in one calendar month
type MonthlyPerformance struct {
	Mes         string `json:"mes"` // abbreviated month name
	Leads       int    `json:"leads"`
	Fechamentos int    `json:"fechamentos"`
}

// OxygenationSplit recency-of-contact health partition
type OxygenationSplit struct {
	Oxigenados int `json:"oxigenados"` // updated within 7 days
	Atencao    int `json:"atencao"`    // 8 to 15 days
	Inativos   int `json:"inativos"`   // beyond 15 days
}

// DashboardResponse data for the main dashboard
type DashboardResponse struct {
	TotalClients    int              `json:"totalClients"`
	RecentLeads     int              `json:"recentLeads"` // registered within 60 days
	InactiveClients int              `json:"inactiveClients"`
	Temperature     []ChartDataItem  `json:"temperature"`
	Status          []ChartDataItem  `json:"status"`
	Channels        []ChartDataItem  `json:"channels"`
	Activity30Days  []DailyActivity  `json:"activity30Days"`
	Oxygenation     OxygenationSplit `json:"oxygenation"`
}

// AnalyticsResponse data for the analytics page
type AnalyticsResponse struct {
	Funnel              []FunnelStage        `json:"funnel"`
	TaxaConversao       float64              `json:"taxaConversao"`
	TaxaPerda           float64              `json:"taxaPerda"`
	VendasFechadas      int                  `json:"vendasFechadas"`
	TempoMedioConversao int                  `json:"tempoMedioConversao"` // days
	Canais              []ChannelStat        `json:"canais"`
	Temperature         []ChartDataItem      `json:"temperature"`
	MonthlyPerformance  []MonthlyPerformance `json:"monthlyPerformance"`
	WeekdayActivity     []WeekdayActivity    `json:"weekdayActivity"`
}
