package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
)

const (
	colorGreen = "166534"
	colorRed   = "991B1B"
)

var xlsxWidths = map[string]float64{"A": 10, "B": 30, "C": 15, "D": 15, "E": 20}

func WriteXLSX(w io.Writer, rows []Row) error {
	f, err := buildXLSX(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func buildXLSX(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet name: %w", err)
	}

	if err := fillSheet(f, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillSheet(f *excelize.File, rows []Row) error {
	for col, width := range xlsxWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("col width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorGreen}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	entradaStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: colorGreen}})
	if err != nil {
		return fmt.Errorf("entrada style: %w", err)
	}

	saidaStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: colorRed}})
	if err != nil {
		return fmt.Errorf("saida style: %w", err)
	}

	header := make([]any, 0, len(Headers))
	for _, h := range Headers {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("header row: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("header row style: %w", err)
	}

	for i, r := range rows {
		line := i + 2

		start, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		values := []any{r.ID, r.Funcionario, r.Data, r.Hora, r.Tipo}
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return fmt.Errorf("row %d: %w", line, err)
		}

		var style int
		switch r.Kind {
		case domainPonto.TipoEntrada:
			style = entradaStyle
		case domainPonto.TipoSaida:
			style = saidaStyle
		default:
			continue
		}

		tipoCell, err := excelize.CoordinatesToCellName(5, line)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, tipoCell, tipoCell, style); err != nil {
			return fmt.Errorf("row %d style: %w", line, err)
		}
	}

	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
