package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/application/report"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// ReportHandler trata geração e download de relatórios (protegido, admin).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// generateRequest body para POST /api/reports.
type generateRequest struct {
	Type    string `json:"type"`               // STOCK | PURCHASE | EXPIRATION
	Format  string `json:"format"`             // PDF | EXCEL | CSV
	OrderID string `json:"order_id,omitempty"` // PURCHASE: detalha um pedido específico
}

// Generate godoc
// @Summary      Gerar relatório
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  generateRequest  true  "Tipo e formato"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in generateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Generate(c.Context(), GetUserID(c), strings.ToUpper(in.Type), strings.ToUpper(in.Format), in.OrderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar relatórios gerados (metadados)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Baixar o arquivo de um relatório gerado
// @Tags         reports
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id   path  string  true  "ID do relatório"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/download [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	rep, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeFor(rep.Format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileNameFor(rep.Type, rep.Format)))
	return c.Send(rep.Content)
}

func contentTypeFor(format string) string {
	switch format {
	case entity.ReportFormatPDF:
		return "application/pdf"
	case entity.ReportFormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case entity.ReportFormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

func fileNameFor(reportType, format string) string {
	ext := map[string]string{
		entity.ReportFormatPDF:   "pdf",
		entity.ReportFormatExcel: "xlsx",
		entity.ReportFormatCSV:   "csv",
	}[format]
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("relatorio-%s.%s", strings.ToLower(reportType), ext)
}
