package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	"github.com/BruksfildServices01/ponto-eletronico/internal/timezone"
)

func samplePontos() []models.Ponto {
	at := time.Date(2026, 3, 2, 11, 5, 0, 0, time.UTC)
	return []models.Ponto{
		{ID: 1, Type: "ENTRADA", Timestamp: at, User: models.User{Name: "Ana"}},
		{ID: 2, Type: "SAIDA", Timestamp: at.Add(9 * time.Hour), User: models.User{Name: "Ana"}},
		{ID: 3, Type: "SAIDA_ALMOCO", Timestamp: at.Add(4 * time.Hour)},
	}
}

func TestUnique(t *testing.T) {
	p := samplePontos()
	got := Unique(append(p, p[0], p[2]))

	require.Len(t, got, 3)
	require.Equal(t, []uint{1, 2, 3}, []uint{got[0].ID, got[1].ID, got[2].ID})
}

func TestRows(t *testing.T) {
	rows := Rows(samplePontos(), timezone.Location(timezone.DefaultTimezone))

	require.Equal(t, Row{ID: 1, Funcionario: "Ana", Data: "02/03/2026", Hora: "08:05", Tipo: "ENTRADA", Kind: "ENTRADA"}, rows[0])
	require.Equal(t, "17:05", rows[1].Hora)
	require.Equal(t, UnknownPerson, rows[2].Funcionario)
	require.Equal(t, "SAIDA ALMOCO", rows[2].Tipo)
}

func TestWritePDF(t *testing.T) {
	rows := Rows(samplePontos(), time.UTC)
	opts := PDFOptions{GeneratedAt: time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), Footer: "Ponto Eletrônico"}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, rows, opts))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	require.Equal(t, 1, buildPDF(rows, opts).PageNo())
}

func TestWritePDFPaginates(t *testing.T) {
	many := make([]Row, 0, 100)
	for i := range 100 {
		many = append(many, Row{ID: uint(i + 1), Funcionario: "Ana", Data: "02/03/2026", Hora: "08:00", Tipo: "ENTRADA"})
	}

	doc := buildPDF(many, PDFOptions{GeneratedAt: time.Now(), Footer: "x"})
	require.NoError(t, doc.Error())
	require.Greater(t, doc.PageNo(), 1)
}

func TestWriteXLSX(t *testing.T) {
	p := append(samplePontos(), models.Ponto{ID: 4, Type: "VOLTA_ALMOCO", Timestamp: time.Now(), User: models.User{Name: "Bia"}})
	rows := Rows(p, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.Equal(t, []string{SheetName}, f.GetSheetList())

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, Headers, got[0])
	require.Equal(t, []string{"1", "Ana", "02/03/2026", "11:05", "ENTRADA"}, got[1])
	require.Equal(t, "SAIDA ALMOCO", got[3][4])

	header, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	require.NotZero(t, header)

	entrada, err := f.GetCellStyle(SheetName, "E2")
	require.NoError(t, err)
	saida, err := f.GetCellStyle(SheetName, "E3")
	require.NoError(t, err)
	volta, err := f.GetCellStyle(SheetName, "E5")
	require.NoError(t, err)

	require.NotZero(t, entrada)
	require.NotZero(t, saida)
	require.NotEqual(t, entrada, saida)
	require.Zero(t, volta)

	panes, err := f.GetPanes(SheetName)
	require.NoError(t, err)
	require.True(t, panes.Freeze)
	require.Equal(t, 1, panes.YSplit)
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))
	require.NotZero(t, buf.Len())
}
