package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Temperature lead interest classification
type Temperature string

const (
	TemperatureQUENTE Temperature = "quente"
	TemperatureMORNO  Temperature = "morno"
	TemperatureFRIO   Temperature = "frio"
)

// JourneyStatus sales funnel stage
type JourneyStatus string

const (
	JourneyEmJornada           JourneyStatus = "em_jornada"
	JourneyPausa               JourneyStatus = "pausa"
	JourneyDesistiu            JourneyStatus = "desistiu"
	JourneyComprouComigo       JourneyStatus = "comprou_comigo"
	JourneyComprouConcorrencia JourneyStatus = "comprou_concorrencia"
)

// SaleData sale economics attached to a client once it closes
type SaleData struct {
	DataVenda           time.Time  `bson:"dataVenda" json:"dataVenda"`
	CodigoImovel        string     `bson:"codigoImovel" json:"codigoImovel"`
	EnResponsavel       string     `bson:"enResponsavel,omitempty" json:"enResponsavel,omitempty"`
	ValorVenda          float64    `bson:"valorVenda" json:"valorVenda"`
	ComissaoContrato    float64    `bson:"comissaoContrato" json:"comissaoContrato"`
	MinhaComissao       float64    `bson:"minhaComissao,omitempty" json:"minhaComissao,omitempty"`
	ValorPrevisto       float64    `bson:"valorPrevisto,omitempty" json:"valorPrevisto,omitempty"`
	ValorRecebido       float64    `bson:"valorRecebido,omitempty" json:"valorRecebido,omitempty"`
	DataPrevRecebimento *time.Time `bson:"dataPrevRecebimento,omitempty" json:"dataPrevRecebimento,omitempty"`
	DataRecebimento     *time.Time `bson:"dataRecebimento,omitempty" json:"dataRecebimento,omitempty"`
	Observacoes         string     `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
}

// Client lead record, owned by a corretor and scoped to a company
type Client struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nome              string             `bson:"nome" json:"nome"`
	Telefone          string             `bson:"telefone" json:"telefone"`
	DataCadastro      time.Time          `bson:"dataCadastro" json:"dataCadastro"`
	DataChegada       time.Time          `bson:"dataChegada" json:"dataChegada"`
	Canal             string             `bson:"canal" json:"canal"`
	PerfilBusca       string             `bson:"perfilBusca" json:"perfilBusca"`
	Budget            string             `bson:"budget" json:"budget"`
	Observacoes       string             `bson:"observacoes" json:"observacoes"`
	Temperatura       Temperature        `bson:"temperatura" json:"temperatura"`
	StatusJornada     JourneyStatus      `bson:"statusJornada" json:"statusJornada"`
	UltimaAtualizacao time.Time          `bson:"ultimaAtualizacao" json:"ultimaAtualizacao"`
	QtdeVisitas       int                `bson:"qtdeVisitas" json:"qtdeVisitas"`
	Quartos           int                `bson:"quartos,omitempty" json:"quartos,omitempty"`
	Banheiros         int                `bson:"banheiros,omitempty" json:"banheiros,omitempty"`
	Vagas             int                `bson:"vagas,omitempty" json:"vagas,omitempty"`
	DadosVenda        *SaleData          `bson:"dadosVenda,omitempty" json:"dadosVenda,omitempty"`
	CorretorID        string             `bson:"corretorId" json:"corretorId"`
	CompanyID         string             `bson:"companyId" json:"companyId"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ClientCreateRequest lead intake payload
type ClientCreateRequest struct {
	Nome          string        `json:"nome" binding:"required"`
	Telefone      string        `json:"telefone" binding:"required"`
	DataCadastro  time.Time     `json:"dataCadastro"`
	DataChegada   time.Time     `json:"dataChegada"`
	Canal         string        `json:"canal" binding:"required"`
	PerfilBusca   string        `json:"perfilBusca"`
	Budget        string        `json:"budget"`
	Observacoes   string        `json:"observacoes"`
	Temperatura   Temperature   `json:"temperatura" binding:"required,oneof=quente morno frio"`
	StatusJornada JourneyStatus `json:"statusJornada" binding:"omitempty,oneof=em_jornada pausa desistiu comprou_comigo comprou_concorrencia"`
	Quartos       int           `json:"quartos"`
	Banheiros     int           `json:"banheiros"`
	Vagas         int           `json:"vagas"`
}

// ClientUpdateRequest partial client update. CorretorID/CompanyID are never
// accepted from the caller.
type ClientUpdateRequest struct {
	Nome          string        `json:"nome"`
	Telefone      string        `json:"telefone"`
	DataCadastro  *time.Time    `json:"dataCadastro"`
	DataChegada   *time.Time    `json:"dataChegada"`
	Canal         string        `json:"canal"`
	PerfilBusca   *string       `json:"perfilBusca"`
	Budget        *string       `json:"budget"`
	Observacoes   *string       `json:"observacoes"`
	Temperatura   Temperature   `json:"temperatura" binding:"omitempty,oneof=quente morno frio"`
	StatusJornada JourneyStatus `json:"statusJornada" binding:"omitempty,oneof=em_jornada pausa desistiu comprou_comigo comprou_concorrencia"`
	Quartos       *int          `json:"quartos"`
	Banheiros     *int          `json:"banheiros"`
	Vagas         *int          `json:"vagas"`
	DadosVenda    *SaleData     `json:"dadosVenda"`
}
