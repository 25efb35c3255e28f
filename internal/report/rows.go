// Package report renderiza uma lista de registros de ponto em PDF ou XLSX.
// Os geradores escrevem exatamente as linhas recebidas.
package report

import (
	"time"

	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	"github.com/BruksfildServices01/ponto-eletronico/internal/timezone"
)

const (
	Title         = "Relatório de Ponto Eletrônico"
	SheetName     = "Relatório de Ponto"
	UnknownPerson = "Desconhecido"

	PDFFilename  = "folha-de-ponto.pdf"
	XLSXFilename = "relatorio-ponto.xlsx"

	PDFContentType  = "application/pdf"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var Headers = []string{"ID", "Funcionário", "Data", "Hora", "Tipo"}

type Row struct {
	ID          uint
	Funcionario string
	Data        string
	Hora        string
	Tipo        string

	Kind domainPonto.Tipo
}

// Unique remove ids repetidos mantendo a primeira ocorrência.
func Unique(pontos []models.Ponto) []models.Ponto {
	seen := make(map[uint]struct{}, len(pontos))
	out := make([]models.Ponto, 0, len(pontos))
	for _, p := range pontos {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func Rows(pontos []models.Ponto, loc *time.Location) []Row {
	rows := make([]Row, 0, len(pontos))
	for _, p := range pontos {
		name := p.User.Name
		if name == "" {
			name = UnknownPerson
		}

		kind := domainPonto.Tipo(p.Type)
		rows = append(rows, Row{
			ID:          p.ID,
			Funcionario: name,
			Data:        timezone.FormatDate(p.Timestamp, loc),
			Hora:        timezone.FormatTime(p.Timestamp, loc),
			Tipo:        kind.Label(),
			Kind:        kind,
		})
	}
	return rows
}
