package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-eletronico/internal/archive"
	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	"github.com/BruksfildServices01/ponto-eletronico/internal/report"
	ucPonto "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/ponto"
)

const ArchiveKeyHeader = "X-Report-Archive-Key"

// Archiver recebe uma cópia de cada relatório gerado.
type Archiver interface {
	Dispatch(job archive.Job) bool
}

// ======================================================
// HANDLER
// ======================================================

type RelatorioHandler struct {
	list    *ucPonto.ListPontos
	loc     *time.Location
	footer  string
	archive Archiver
	now     func() time.Time
}

// NewRelatorioHandler aceita archiver nil quando o arquivo em S3 está desligado.
func NewRelatorioHandler(
	list *ucPonto.ListPontos,
	loc *time.Location,
	footer string,
	archiver Archiver,
) *RelatorioHandler {
	return &RelatorioHandler{
		list:    list,
		loc:     loc,
		footer:  footer,
		archive: archiver,
		now:     time.Now,
	}
}

type format struct {
	ext         string
	filename    string
	contentType string
	render      func(h *RelatorioHandler, buf *bytes.Buffer, rows []report.Row) error
}

var (
	formatPDF = format{
		ext:         "pdf",
		filename:    report.PDFFilename,
		contentType: report.PDFContentType,
		render: func(h *RelatorioHandler, buf *bytes.Buffer, rows []report.Row) error {
			return report.WritePDF(buf, rows, report.PDFOptions{
				GeneratedAt: h.now().In(h.loc),
				Footer:      h.footer,
			})
		},
	}

	formatXLSX = format{
		ext:         "xlsx",
		filename:    report.XLSXFilename,
		contentType: report.XLSXContentType,
		render: func(_ *RelatorioHandler, buf *bytes.Buffer, rows []report.Row) error {
			return report.WriteXLSX(buf, rows)
		},
	}
)

// ======================================================
// EXPORTS
// ======================================================

func (h *RelatorioHandler) PDF(c *gin.Context) {
	h.export(c, formatPDF)
}

func (h *RelatorioHandler) XLSX(c *gin.Context) {
	h.export(c, formatXLSX)
}

func (h *RelatorioHandler) export(c *gin.Context, f format) {
	ctx := c.Request.Context()

	pagina := domainPonto.NewPaginaWithDefault(c.Query("page"), c.Query("limit"), domainPonto.ReportLimit)

	out, err := h.list.Execute(ctx, pagina)
	if err != nil {
		httperr.FromError(c, err, "report_failed", "Erro ao gerar relatório")
		return
	}

	pontos := report.Unique(filterBusca(out.Pontos, c.Query("busca")))
	if len(pontos) == 0 {
		httperr.NotFound(c, "no_records", "Nenhum registro para exportar")
		return
	}

	var buf bytes.Buffer
	if err := f.render(h, &buf, report.Rows(pontos, h.loc)); err != nil {
		slog.ErrorContext(ctx, "report render failed", "format", f.ext, "error", err)
		httperr.Internal(c, "report_failed", "Erro ao gerar relatório")
		return
	}

	if h.archive != nil {
		key := archive.Key(h.now().UTC(), f.ext)
		job := archive.Job{
			Key:         key,
			ContentType: f.contentType,
			Body:        bytes.Clone(buf.Bytes()),
		}
		if h.archive.Dispatch(job) {
			c.Header(ArchiveKeyHeader, key)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, f.filename))
	c.Data(http.StatusOK, f.contentType, buf.Bytes())
}

// filterBusca aplica o filtro do painel: trecho do nome ou do tipo, sem
// diferenciar maiúsculas.
func filterBusca(pontos []models.Ponto, busca string) []models.Ponto {
	busca = strings.ToLower(strings.TrimSpace(busca))
	if busca == "" {
		return pontos
	}

	out := make([]models.Ponto, 0, len(pontos))
	for _, p := range pontos {
		if strings.Contains(strings.ToLower(p.User.Name), busca) ||
			strings.Contains(strings.ToLower(p.Type), busca) {
			out = append(out, p)
		}
	}
	return out
}
