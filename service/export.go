package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/imobcrm/imobcrm_end/models"
)

const exportDateLayout = "02/01/2006"

// clientNameIndex maps client ids to names for the relational sheets
func clientNameIndex(clients []models.Client) map[string]string {
	index := make(map[string]string, len(clients))
	for _, c := range clients {
		index[c.ID.Hex()] = c.Nome
	}
	return index
}

func clientName(index map[string]string, id string) string {
	if name, ok := index[id]; ok {
		return name
	}
	return "N/A"
}

// BuildWorkbook assembles the multi-sheet export: Clientes, Interações and
// Visitas, one row per record of the caller-visible data.
func BuildWorkbook(clients []models.Client, interactions []models.Interaction, visits []models.Visit) (*excelize.File, error) {
	f := excelize.NewFile()
	names := clientNameIndex(clients)

	const clientsSheet = "Clientes"
	if err := f.SetSheetName("Sheet1", clientsSheet); err != nil {
		return nil, err
	}
	clientHeader := []interface{}{
		"Nome", "Telefone", "Data Cadastro", "Data Chegada", "Canal",
		"Perfil de Busca", "Budget", "Temperatura", "Status",
		"Última Atualização", "Qtde Visitas", "Observações",
	}
	if err := f.SetSheetRow(clientsSheet, "A1", &clientHeader); err != nil {
		return nil, err
	}
	for i, c := range clients {
		row := []interface{}{
			c.Nome,
			c.Telefone,
			c.DataCadastro.Format(exportDateLayout),
			c.DataChegada.Format(exportDateLayout),
			c.Canal,
			c.PerfilBusca,
			c.Budget,
			TemperatureLabel(c.Temperatura),
			StatusLabel(c.StatusJornada),
			c.UltimaAtualizacao.Format(exportDateLayout),
			c.QtdeVisitas,
			c.Observacoes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(clientsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const interactionsSheet = "Interações"
	if _, err := f.NewSheet(interactionsSheet); err != nil {
		return nil, err
	}
	interactionHeader := []interface{}{"Cliente", "Data", "Meio", "Resumo"}
	if err := f.SetSheetRow(interactionsSheet, "A1", &interactionHeader); err != nil {
		return nil, err
	}
	for i, it := range interactions {
		row := []interface{}{
			clientName(names, it.ClientID),
			it.Data.Format(exportDateLayout),
			MeioLabel(it.Meio),
			it.Resumo,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(interactionsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const visitsSheet = "Visitas"
	if _, err := f.NewSheet(visitsSheet); err != nil {
		return nil, err
	}
	visitHeader := []interface{}{"Cliente", "Data", "Código Imóvel", "Endereço", "Feedback"}
	if err := f.SetSheetRow(visitsSheet, "A1", &visitHeader); err != nil {
		return nil, err
	}
	for i, v := range visits {
		row := []interface{}{
			clientName(names, v.ClientID),
			v.Data.Format(exportDateLayout),
			v.CodigoImovel,
			v.EnderecoImovel,
			v.Feedback,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(visitsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildClientsCSV renders the client list as CSV prefixed with a UTF-8 BOM
// so spreadsheet tools pick up the encoding.
func BuildClientsCSV(clients []models.Client) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	header := []string{
		"Nome", "Telefone", "Data Cadastro", "Canal", "Perfil de Busca",
		"Budget", "Temperatura", "Status", "Qtde Visitas", "Observações",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, c := range clients {
		record := []string{
			c.Nome,
			c.Telefone,
			c.DataCadastro.Format(exportDateLayout),
			c.Canal,
			c.PerfilBusca,
			c.Budget,
			TemperatureLabel(c.Temperatura),
			StatusLabel(c.StatusJornada),
			fmt.Sprintf("%d", c.QtdeVisitas),
			c.Observacoes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Backup full structured export of the caller-visible data
type Backup struct {
	ExportedAt   time.Time            `json:"exportedAt"`
	Clients      []models.Client      `json:"clients"`
	Interactions []models.Interaction `json:"interactions"`
	Visits       []models.Visit       `json:"visits"`
}

// BuildBackup assembles the JSON backup document
func BuildBackup(clients []models.Client, interactions []models.Interaction, visits []models.Visit, now time.Time) Backup {
	return Backup{
		ExportedAt:   now,
		Clients:      clients,
		Interactions: interactions,
		Visits:       visits,
	}
}

// ExportFileName timestamped name for download attachments
func ExportFileName(ext string, now time.Time) string {
	return fmt.Sprintf("crm_imobiliario_%s.%s", now.Format("2006-01-02_1504"), ext)
}
