package controllers

import (
	"context"
	"insightd/internal/ai"
	"insightd/internal/export"
	"insightd/internal/models"
	"insightd/internal/providers"
	"insightd/internal/services"
	"insightd/internal/structures"
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	cacheKeyInsights  = "insights"
	cacheKeyDashboard = "dashboard"

	defaultSurface = "default"
)

type ApiController struct {
	config   *structures.Config
	logger   providers.Logger
	service  services.InsightServiceInterface
	cache    providers.CacheProviderInterface
	metrics  providers.MetricsProviderInterface
	analyzer ai.Analyzer
	uploads  uploadTracker
}

func NewApiController(config *structures.Config, logger providers.Logger, service services.InsightServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, analyzer ai.Analyzer) *ApiController {
	return &ApiController{
		config:   config,
		logger:   logger,
		service:  service,
		cache:    cache,
		metrics:  metrics,
		analyzer: analyzer,
	}
}

// uploadTracker hands out a generation number per upload surface.
// A result is only applied if no newer request superseded it, so a
// slow first response can never overwrite a faster second one.
type uploadTracker struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func (t *uploadTracker) begin(surface string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gens == nil {
		t.gens = make(map[string]uint64)
	}
	t.gens[surface]++
	return t.gens[surface]
}

func (t *uploadTracker) current(surface string, gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gens[surface] == gen
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) invalidate() {
	ac.cache.Del(cacheKeyInsights)
	ac.cache.Del(cacheKeyDashboard)
}

// GetInsights lists all records, newest first.
func (ac *ApiController) GetInsights(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyInsights, func() (any, error) {
		return models.ReverseChronological(ac.service.List()), nil
	})
}

type createInsightPayload struct {
	Date          string   `json:"date"`
	Title         string   `json:"title"`
	Views         int      `json:"views"`
	Reach         int      `json:"reach"`
	Likes         int      `json:"likes"`
	Shares        int      `json:"shares"`
	Saves         int      `json:"saves"`
	Comments      int      `json:"comments"`
	RetentionRate *float64 `json:"retentionRate"`
	AvgWatchTime  string   `json:"avgWatchTime"`
}

func (p *createInsightPayload) validate() string {
	for _, v := range []int{p.Views, p.Reach, p.Likes, p.Shares, p.Saves, p.Comments} {
		if v < 0 {
			return "metric counts must be non-negative"
		}
	}
	if p.RetentionRate != nil && (*p.RetentionRate < 0 || *p.RetentionRate > 100) {
		return "retentionRate must be between 0 and 100"
	}
	return ""
}

// CreateInsight records a manual entry. The server owns id, date
// default and provenance; the client never supplies an id.
func (ac *ApiController) CreateInsight(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload createInsightPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	rec := models.InsightRecord{
		ID:            uuid.NewString(),
		Date:          payload.Date,
		Title:         payload.Title,
		Views:         payload.Views,
		Reach:         payload.Reach,
		Likes:         payload.Likes,
		Shares:        payload.Shares,
		Saves:         payload.Saves,
		Comments:      payload.Comments,
		RetentionRate: payload.RetentionRate,
		AvgWatchTime:  payload.AvgWatchTime,
		Source:        models.SourceManual,
	}
	if rec.Date == "" {
		rec.Date = time.Now().Format(time.RFC3339)
	}

	if err := ac.service.Add(rec); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist record")
		return
	}

	ac.invalidate()
	writeJSON(w, http.StatusCreated, rec)
}

type deleteResponse struct {
	Removed bool   `json:"removed"`
	ID      string `json:"id"`
}

// DeleteInsight removes a record by id. The destructive step only
// happens with confirm=true; the first call without it returns a
// confirmation prompt and leaves the store untouched.
func (ac *ApiController) DeleteInsight(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusPreconditionRequired, "deletion is irreversible, repeat the request with confirm=true")
		return
	}

	removed, err := ac.service.Remove(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist removal")
		return
	}
	if removed {
		ac.invalidate()
	}
	writeJSON(w, http.StatusOK, deleteResponse{Removed: removed, ID: id})
}

type dashboardResponse struct {
	Totals models.Totals          `json:"totals"`
	Series []models.InsightRecord `json:"series"`
}

// GetDashboard returns summary totals plus the date-ascending series
// the trend charts are drawn from.
func (ac *ApiController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyDashboard, func() (any, error) {
		records := ac.service.List()
		return dashboardResponse{
			Totals: models.ComputeTotals(records),
			Series: models.Chronological(records),
		}, nil
	})
}

// ExtractInsightImage runs a screenshot through the AI collaborator
// and, when the request is still the newest on its surface, admits the
// extracted metrics as an Upload record.
func (ac *ApiController) ExtractInsightImage(w http.ResponseWriter, r *http.Request) {
	data, mimeType, surface, ok := ac.readUpload(w, r, ac.config.AI.MaxImageUploadSize)
	if !ok {
		return
	}

	gen := ac.uploads.begin(surface)

	extraction, ok := runAnalysis(ac, w, r, "extract_insight", func(ctx context.Context) (*ai.InsightExtraction, error) {
		return ac.analyzer.ExtractInsight(ctx, data, mimeType)
	})
	if !ok {
		return
	}

	if !ac.uploads.current(surface, gen) {
		ac.logger.Warnf(providers.TypePost, "Discarding superseded extraction on surface %s", surface)
		writeError(w, http.StatusConflict, "superseded by a newer upload")
		return
	}

	rec := models.InsightRecord{
		ID:            uuid.NewString(),
		Date:          time.Now().Format(time.RFC3339),
		Title:         extraction.Title,
		Views:         extraction.Views,
		Reach:         extraction.Reach,
		Likes:         extraction.Likes,
		Shares:        extraction.Shares,
		Saves:         extraction.Saves,
		Comments:      extraction.Comments,
		RetentionRate: extraction.RetentionRate,
		AvgWatchTime:  extraction.AvgWatchTime,
		Source:        models.SourceUpload,
	}

	if err := ac.service.Add(rec); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to persist record")
		return
	}

	ac.invalidate()
	writeJSON(w, http.StatusCreated, rec)
}

// AnalyzeVideo returns the display-only critique. The result is never
// persisted.
func (ac *ApiController) AnalyzeVideo(w http.ResponseWriter, r *http.Request) {
	data, mimeType, surface, ok := ac.readUpload(w, r, ac.config.AI.MaxVideoUploadSize)
	if !ok {
		return
	}

	gen := ac.uploads.begin(surface)

	analysis, ok := runAnalysis(ac, w, r, "analyze_video", func(ctx context.Context) (*ai.VideoAnalysis, error) {
		return ac.analyzer.AnalyzeVideo(ctx, data, mimeType)
	})
	if !ok {
		return
	}

	if !ac.uploads.current(surface, gen) {
		ac.logger.Warnf(providers.TypePost, "Discarding superseded analysis on surface %s", surface)
		writeError(w, http.StatusConflict, "superseded by a newer upload")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// ExportCSV streams the record set as a dated CSV attachment.
func (ac *ApiController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.CSVFileName(now)+`"`)
	if err := export.WriteCSV(w, ac.service.List()); err != nil {
		ac.logger.Errorf(providers.TypeGet, "CSV export failed: %s", err)
	}
}

// ExportPDF streams the tabular report as a dated PDF attachment.
func (ac *ApiController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.PDFFileName(now)+`"`)
	if err := export.WritePDF(w, models.ReverseChronological(ac.service.List()), now); err != nil {
		ac.logger.Errorf(providers.TypeGet, "PDF export failed: %s", err)
	}
}

func (ac *ApiController) readUpload(w http.ResponseWriter, r *http.Request, limit int64) (data []byte, mimeType, surface string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+maxRequestBodySize)
	if err := r.ParseMultipartForm(limit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload")
		return nil, "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return nil, "", "", false
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return nil, "", "", false
	}
	if int64(len(data)) > limit {
		writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
		return nil, "", "", false
	}

	surface = r.FormValue("surface")
	if surface == "" {
		surface = defaultSurface
	}

	return data, header.Header.Get("Content-Type"), surface, true
}

func analyzeCtx(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(r.Context(), timeout)
	}
	return r.Context(), func() {}
}

func runAnalysis[T any](ac *ApiController, w http.ResponseWriter, r *http.Request, operation string, call func(context.Context) (*T, error)) (*T, bool) {
	ctx, cancel := analyzeCtx(r, ac.config.AI.Timeout)
	defer cancel()

	start := time.Now()
	result, err := call(ctx)
	ac.metrics.ObserveAIDuration(operation, time.Since(start))
	if err != nil {
		ac.metrics.IncAIRequests(operation, "failure")
		ac.logger.Errorf(providers.TypePost, "AI %s failed: %s", operation, err)
		writeError(w, http.StatusBadGateway, "analysis failed: "+err.Error())
		return nil, false
	}
	ac.metrics.IncAIRequests(operation, "success")
	return result, true
}
