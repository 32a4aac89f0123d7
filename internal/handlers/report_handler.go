package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/cache"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/finance"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/dto"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
)

type ReportHandler struct {
	db      *gorm.DB
	reports *cache.ReportCache
}

func NewReportHandler(db *gorm.DB, reports *cache.ReportCache) *ReportHandler {
	return &ReportHandler{db: db, reports: reports}
}

// Summary devolve o resumo financeiro: receita realizada, receita
// pendente e os projetos particionados por quitação. Janela opcional
// via ?start=2026-01-01&end=2026-12-31; por padrão o recorte é pelo
// intervalo do projeto, ?by_due_date=true troca para o vencimento de
// cada parcela.
func (h *ReportHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	startStr := c.Query("start")
	endStr := c.Query("end")
	byDueDate := c.Query("by_due_date") == "true"

	var window *schedule.DateRange
	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			httperr.BadRequest(c, "incomplete_window", "Informe início e fim da janela.")
			return
		}

		start, err := timezone.ParseDate(c.Query("timezone"), startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_start", "Data inicial inválida.")
			return
		}
		end, err := timezone.ParseDate(c.Query("timezone"), endStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_end", "Data final inválida.")
			return
		}

		r, err := schedule.NewDateRange(start, end)
		if err != nil {
			respondError(c, err)
			return
		}
		window = &r
	}

	cacheKey := fmt.Sprintf("%s:%s:%t", startStr, endStr, byDueDate)
	if payload, ok := h.reports.Get(ctx, cacheKey); ok {
		c.Data(http.StatusOK, "application/json", []byte(payload))
		return
	}

	var projects []models.Project
	if err := h.db.
		Preload("Client").
		Preload("Payments").
		Find(&projects).Error; err != nil {

		httperr.Internal(c, "failed_to_list_projects", "Erro ao listar projetos.")
		return
	}

	opts := finance.SumOptions{ByDueDate: byDueDate}
	realized := finance.TotalRealizedRevenueWith(projects, window, opts)
	pending := finance.TotalPendingRevenueWith(projects, window, opts)

	paid, unpaid := finance.PartitionProjectsByPaymentStatus(projects)
	today := timezone.StartOfDay(timezone.Now())

	summary := dto.ReportSummaryDTO{
		RealizedRevenue: realized.StringFixed(2),
		PendingRevenue:  pending.StringFixed(2),
		PaidProjects:    toProjectList(paid, today),
		PendingProjects: toProjectList(unpaid, today),
	}

	if payload, err := json.Marshal(summary); err == nil {
		h.reports.Set(ctx, cacheKey, string(payload))
	}

	c.JSON(http.StatusOK, summary)
}

func toProjectList(projects []models.Project, today time.Time) []dto.ProjectListDTO {
	out := make([]dto.ProjectListDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ProjectListDTO{
			ID:            p.ID,
			Name:          p.Name,
			ClientName:    p.Client.Name,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			Value:         p.Value,
			PaymentStatus: p.PaymentStatus,
			Status:        finance.ExecutionStatusOf(p, today),
		})
	}
	return out
}
