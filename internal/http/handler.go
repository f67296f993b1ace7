package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/k1ske/gigpay/internal/http/middleware"
	"github.com/k1ske/gigpay/internal/service"
)

type Handler struct {
	contracts *service.ContractService
	jobs      *service.JobService
	balances  *service.BalanceService
	reports   *service.ReportService
	log       zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	jobs *service.JobService,
	balances *service.BalanceService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		contracts: contracts,
		jobs:      jobs,
		balances:  balances,
		reports:   reports,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, identityMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(identityMiddleware)
	protected.GET("/contracts/:id", h.getContract)
	protected.GET("/contracts", h.listContracts)
	protected.GET("/jobs/unpaid", h.listUnpaidJobs)
	protected.POST("/jobs/:job_id/pay", h.payForJob)

	router.POST("/balances/deposit/:userId", h.deposit)
	router.GET("/admin/best-profession", h.bestProfession)
	router.GET("/admin/best-clients", h.bestClients)
	router.GET("/admin/best-clients/export", h.exportBestClients)
}

func (h *Handler) getContract(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot match any contract; same 404 as a
		// contract owned by someone else.
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
		return
	}

	contract, err := h.contracts.GetByID(c.Request.Context(), id, caller)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) listContracts(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	contracts, err := h.contracts.List(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) listUnpaidJobs(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	jobs, err := h.jobs.ListUnpaid(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) payForJob(c *gin.Context) {
	caller, ok := middleware.MustProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
		return
	}

	if err := h.jobs.PayForJob(c.Request.Context(), jobID, caller); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type depositRequest struct {
	Amount json.Number `json:"amount"`
}

func (h *Handler) deposit(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	if err := h.balances.Deposit(c.Request.Context(), profileID, amount); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bestProfession(c *gin.Context) {
	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	best, err := h.reports.BestProfession(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, best)
}

func (h *Handler) bestClients(c *gin.Context) {
	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	clients, err := h.reports.BestClients(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) exportBestClients(c *gin.Context) {
	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	format, err := parseExportFormat(c.DefaultQuery("format", "xlsx"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.reports.ExportBestClients(c.Request.Context(), start, end, format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDateRange), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrInvalidDeposit),
		errors.Is(err, service.ErrNotClient),
		errors.Is(err, service.ErrDepositCapExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDateRange accepts the layouts callers actually send; anything
// else is reported as an invalid range. Ordering is checked by the
// individual report operations, not here.
func parseDateRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := parseDate(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, service.ErrInvalidDateRange
	}
	end, err := parseDate(rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, service.ErrInvalidDateRange
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidDateRange
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidDateRange
}

func parseExportFormat(raw string) (service.ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "xlsx":
		return service.ExportFormatXLSX, nil
	case "pdf":
		return service.ExportFormatPDF, nil
	default:
		return "", service.ErrInvalidInput
	}
}
