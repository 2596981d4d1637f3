package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobcrm/imobcrm_end/models"
)

func validSaleData() *models.SaleData {
	return &models.SaleData{
		DataVenda:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CodigoImovel:     "AP-1042",
		ValorVenda:       550000,
		ComissaoContrato: 6,
	}
}

func TestSaleFlowConfirm(t *testing.T) {
	flow := NewSaleFlow(models.JourneyEmJornada)
	assert.Equal(t, SaleFlowIdle, flow.State())

	require.NoError(t, flow.RequestWon())
	assert.Equal(t, SaleFlowAwaitingSaleData, flow.State())

	status, data, err := flow.Confirm(validSaleData())
	require.NoError(t, err)
	assert.Equal(t, models.JourneyComprouComigo, status)
	require.NotNil(t, data)
	assert.Equal(t, "AP-1042", data.CodigoImovel)
	assert.Equal(t, SaleFlowIdle, flow.State())
}

func TestSaleFlowCancelRestoresPreviousStatus(t *testing.T) {
	flow := NewSaleFlow(models.JourneyPausa)
	require.NoError(t, flow.RequestWon())

	restored := flow.Cancel()
	assert.Equal(t, models.JourneyPausa, restored)
	assert.Equal(t, SaleFlowIdle, flow.State())
}

func TestSaleFlowDoubleRequest(t *testing.T) {
	flow := NewSaleFlow(models.JourneyEmJornada)
	require.NoError(t, flow.RequestWon())
	assert.Error(t, flow.RequestWon())
}

func TestSaleFlowConfirmRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		data *models.SaleData
	}{
		{"nil data", nil},
		{"zero value", &models.SaleData{CodigoImovel: "AP-1"}},
		{"negative value", &models.SaleData{CodigoImovel: "AP-1", ValorVenda: -1}},
		{"missing property code", &models.SaleData{ValorVenda: 100000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow := NewSaleFlow(models.JourneyEmJornada)
			require.NoError(t, flow.RequestWon())

			status, data, err := flow.Confirm(tc.data)
			assert.Error(t, err)
			assert.Equal(t, models.JourneyEmJornada, status)
			assert.Nil(t, data)
			// flow stays open so the caller can retry or cancel
			assert.Equal(t, SaleFlowAwaitingSaleData, flow.State())
		})
	}
}

func TestSaleFlowConfirmWithoutRequest(t *testing.T) {
	flow := NewSaleFlow(models.JourneyEmJornada)

	_, _, err := flow.Confirm(validSaleData())
	assert.Error(t, err)
}
