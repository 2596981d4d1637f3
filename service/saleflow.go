package service

import (
	"fmt"

	"github.com/imobcrm/imobcrm_end/models"
)

// SaleFlowState state of the sale-capture flow
type SaleFlowState int

const (
	// SaleFlowIdle no won-transition in progress
	SaleFlowIdle SaleFlowState = iota
	// SaleFlowAwaitingSaleData a won-transition is pending sale economics
	SaleFlowAwaitingSaleData
)

// SaleFlow two-state machine guarding the transition of a client to
// "comprou_comigo". The transition is not committed on request: it waits for
// the sale economics and only Confirm produces the merged update. Cancel
// reverts to the status the client had before.
type SaleFlow struct {
	state    SaleFlowState
	previous models.JourneyStatus
}

// NewSaleFlow starts a flow for a client currently at the given status
func NewSaleFlow(current models.JourneyStatus) *SaleFlow {
	return &SaleFlow{state: SaleFlowIdle, previous: current}
}

// State current flow state
func (f *SaleFlow) State() SaleFlowState {
	return f.state
}

// RequestWon asks for the won transition, moving the flow to
// SaleFlowAwaitingSaleData.
func (f *SaleFlow) RequestWon() error {
	if f.state != SaleFlowIdle {
		return fmt.Errorf("transição de venda já em andamento")
	}
	f.state = SaleFlowAwaitingSaleData
	return nil
}

// Confirm completes the transition with the captured sale data, returning
// the status and sale record to persist.
func (f *SaleFlow) Confirm(data *models.SaleData) (models.JourneyStatus, *models.SaleData, error) {
	if f.state != SaleFlowAwaitingSaleData {
		return f.previous, nil, fmt.Errorf("nenhuma transição de venda em andamento")
	}
	if data == nil {
		return f.previous, nil, fmt.Errorf("dados da venda são obrigatórios para fechar o cliente")
	}
	if data.ValorVenda <= 0 {
		return f.previous, nil, fmt.Errorf("valor da venda deve ser maior que zero")
	}
	if data.CodigoImovel == "" {
		return f.previous, nil, fmt.Errorf("código do imóvel é obrigatório")
	}
	f.state = SaleFlowIdle
	return models.JourneyComprouComigo, data, nil
}

// Cancel aborts the transition and returns the status to restore
func (f *SaleFlow) Cancel() models.JourneyStatus {
	f.state = SaleFlowIdle
	return f.previous
}
