package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siftworks/botsift/internal/aggregate"
	"github.com/siftworks/botsift/internal/database"
	"github.com/siftworks/botsift/internal/detect"
	"github.com/siftworks/botsift/internal/domain"
	"github.com/siftworks/botsift/internal/logger"
	"github.com/siftworks/botsift/internal/scorer"
	"github.com/siftworks/botsift/internal/secondary"
	"github.com/siftworks/botsift/internal/telemetry"
	"github.com/siftworks/botsift/internal/youtube"
)

// SecondaryClassifier is the collaborator consulted for a second opinion on
// the top-scoring candidates.
type SecondaryClassifier interface {
	Classify(ctx context.Context, cands []secondary.Candidate) ([]secondary.OpinionEntry, error)
	Health(ctx context.Context) error
}

// CommentFetcher is the collaborator that pulls comments from the video
// platform.
type CommentFetcher interface {
	FetchVideo(ctx context.Context, videoID string) (*domain.VideoMeta, error)
	FetchComments(ctx context.Context, videoID string, max int) ([]domain.Comment, error)
}

// Handler handles HTTP requests for the botsift API. The fetcher and the
// secondary classifier are optional; endpoints depending on an absent
// collaborator answer 503.
type Handler struct {
	scorer     *scorer.Scorer
	detectors  *detect.Detectors
	phrases    *database.PhraseRepository
	fetcher    CommentFetcher
	classifier SecondaryClassifier
	tel        *telemetry.Provider
	log        logger.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	sc *scorer.Scorer,
	detectors *detect.Detectors,
	phrases *database.PhraseRepository,
	fetcher CommentFetcher,
	classifier SecondaryClassifier,
	tel *telemetry.Provider,
	log logger.Logger,
) *Handler {
	return &Handler{
		scorer:     sc,
		detectors:  detectors,
		phrases:    phrases,
		fetcher:    fetcher,
		classifier: classifier,
		tel:        tel,
		log:        log,
	}
}

// Analyze handles POST /api/v1/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp := h.analyze(c.Request.Context(), nil, req.Comments, req.WithSecondary)
	c.JSON(http.StatusOK, resp)
}

// AnalyzeVideo handles POST /api/v1/analyze/video.
func (h *Handler) AnalyzeVideo(c *gin.Context) {
	if h.fetcher == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "comment fetch is not configured"})
		return
	}

	var req AnalyzeVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	video, err := h.fetcher.FetchVideo(ctx, req.VideoID)
	if err != nil {
		h.fetchError(c, req.VideoID, err)
		return
	}
	comments, err := h.fetcher.FetchComments(ctx, req.VideoID, req.MaxComments)
	if err != nil {
		h.fetchError(c, req.VideoID, err)
		return
	}
	h.tel.Metrics.FetchedComments.Add(float64(len(comments)))

	resp := h.analyze(ctx, video, comments, req.WithSecondary)
	c.JSON(http.StatusOK, resp)
}

// AnalyzeCSV handles POST /api/v1/analyze/csv: same input as Analyze, but
// the scored batch is returned as CSV for spreadsheet use.
func (h *Handler) AnalyzeCSV(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp := h.analyze(c.Request.Context(), nil, req.Comments, req.WithSecondary)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="botsift.csv"`)
	c.Status(http.StatusOK)
	if err := writeCSV(c.Writer, resp.Comments); err != nil {
		h.log.Error("csv export failed", logger.Err(err))
	}
}

// analyze runs the scoring pipeline: score, optionally consult the
// secondary classifier for the top candidates, then summarize.
func (h *Handler) analyze(ctx context.Context, video *domain.VideoMeta, comments []domain.Comment, withSecondary bool) AnalyzeResponse {
	ctx, span := h.tel.StartSpan(ctx, "analyze", len(comments))
	defer span.End()

	start := time.Now()
	scored := h.scorer.Score(comments)

	resp := AnalyzeResponse{Video: video, Comments: scored}
	if withSecondary {
		resp.SecondaryError = h.consultSecondary(ctx, scored)
	}
	resp.Summary = aggregate.Summarize(scored, domain.SuspiciousThreshold)

	h.tel.Metrics.RecordBatch(resp.Summary.Total, resp.Summary.Suspicious, time.Since(start))
	for _, fc := range resp.Summary.TopFlags {
		h.tel.Metrics.FlagTotal.WithLabelValues(string(fc.Flag)).Add(float64(fc.Count))
	}
	return resp
}

// consultSecondary sends the capped top-scoring subset to the classifier
// and merges opinions back by index. A failed or unparseable response is
// reported to the caller but never discards the heuristic results.
func (h *Handler) consultSecondary(ctx context.Context, scored []domain.ScoredComment) string {
	if h.classifier == nil {
		return "secondary classifier is not configured"
	}

	cands := secondary.SelectCandidates(scored, domain.SecondaryCandidateCap)
	if len(cands) == 0 {
		return ""
	}

	entries, err := h.classifier.Classify(ctx, cands)
	if err != nil {
		h.tel.Metrics.SecondaryCalls.WithLabelValues("error").Inc()
		h.log.Warn("secondary classification failed", logger.Err(err))
		return err.Error()
	}

	h.tel.Metrics.SecondaryCalls.WithLabelValues("ok").Inc()
	secondary.Merge(scored, cands, entries)
	return ""
}

// ListPhrases handles GET /api/v1/phrases.
func (h *Handler) ListPhrases(c *gin.Context) {
	rules, err := h.phrases.List(c.Request.Context())
	if err != nil {
		h.log.Error("list phrases failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phrases": rules, "total": len(rules)})
}

// CreatePhrase handles POST /api/v1/phrases. The matching detector is
// hot-reloaded so the new phrase takes effect immediately.
func (h *Handler) CreatePhrase(c *gin.Context) {
	var rule database.PhraseRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !database.ValidCategory(rule.Category) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown category: " + rule.Category})
		return
	}
	rule.Enabled = true

	if err := h.phrases.Create(c.Request.Context(), &rule); err != nil {
		h.log.Error("create phrase failed", logger.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.reloadPhrases(c.Request.Context(), rule.Category); err != nil {
		h.log.Warn("phrase reload failed", logger.String("category", rule.Category), logger.Err(err))
	}

	h.log.Info("phrase rule created",
		logger.String("category", rule.Category),
		logger.String("phrase", rule.Phrase),
	)
	c.JSON(http.StatusCreated, rule)
}

// DeletePhrase handles DELETE /api/v1/phrases/:id.
func (h *Handler) DeletePhrase(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid phrase id"})
		return
	}

	if err := h.phrases.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrPhraseNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	for _, category := range []string{
		database.CategoryContact, database.CategoryScam,
		database.CategoryCrypto, database.CategoryPromo,
	} {
		if err := h.reloadPhrases(c.Request.Context(), category); err != nil {
			h.log.Warn("phrase reload failed", logger.String("category", category), logger.Err(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// reloadPhrases swaps one detector's phrase list from the store.
func (h *Handler) reloadPhrases(ctx context.Context, category string) error {
	phrases, err := h.phrases.ListEnabled(ctx, category)
	if err != nil {
		return err
	}
	switch category {
	case database.CategoryContact:
		h.detectors.Contact.Update(phrases)
	case database.CategoryScam:
		h.detectors.Scam.Update(phrases)
	case database.CategoryCrypto:
		h.detectors.Crypto.Update(phrases)
	case database.CategoryPromo:
		h.detectors.Promo.Update(phrases)
	}
	return nil
}

// SecondaryHealth handles GET /api/v1/llm/health.
func (h *Handler) SecondaryHealth(c *gin.Context) {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "disabled"})
		return
	}
	if err := h.classifier.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) fetchError(c *gin.Context, videoID string, err error) {
	h.tel.Metrics.FetchFailures.Inc()
	h.log.Error("comment fetch failed", logger.String("video_id", videoID), logger.Err(err))
	status := http.StatusBadGateway
	if errors.Is(err, youtube.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
