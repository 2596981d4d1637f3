package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imobcrm/imobcrm_end/models"
)

func TestBuildClientsCSV(t *testing.T) {
	clients := []models.Client{
		{
			Nome:          "João Silva",
			Telefone:      "11999990000",
			DataCadastro:  time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
			Canal:         "Instagram",
			Temperatura:   models.TemperatureQUENTE,
			StatusJornada: models.JourneyEmJornada,
			QtdeVisitas:   3,
		},
	}

	out, err := BuildClientsCSV(clients)
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "CSV must start with a UTF-8 BOM")
	assert.Contains(t, content, "Nome,Telefone,Data Cadastro")
	assert.Contains(t, content, "João Silva,11999990000,15/07/2026,Instagram")
	assert.Contains(t, content, "Quente,Em Jornada,3")
}

func TestBuildWorkbook(t *testing.T) {
	clientID := primitive.NewObjectID()
	clients := []models.Client{
		{
			ID:            clientID,
			Nome:          "Maria",
			DataCadastro:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			Temperatura:   models.TemperatureMORNO,
			StatusJornada: models.JourneyEmJornada,
		},
	}
	interactions := []models.Interaction{
		{ClientID: clientID.Hex(), Data: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), Meio: models.InteractionWhatsapp, Resumo: "primeiro contato"},
	}
	visits := []models.Visit{
		{ClientID: "missing", Data: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), CodigoImovel: "AP-7"},
	}

	f, err := BuildWorkbook(clients, interactions, visits)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Clientes", "Interações", "Visitas"}, f.GetSheetList())

	nome, err := f.GetCellValue("Clientes", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Maria", nome)

	// interaction rows resolve the client name
	who, err := f.GetCellValue("Interações", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Maria", who)

	// unknown parent falls back to a placeholder
	who, err = f.GetCellValue("Visitas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "N/A", who)
}

func TestBuildBackup(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	backup := BuildBackup([]models.Client{{Nome: "A"}}, nil, nil, now)

	assert.Equal(t, now, backup.ExportedAt)
	require.Len(t, backup.Clients, 1)
	assert.Empty(t, backup.Interactions)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "crm_imobiliario_2026-08-01_1430.xlsx", ExportFileName("xlsx", now))
}
