package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"captionforge/internal/caption"
	"captionforge/internal/store"
	"captionforge/pkg/logger"
)

// runRequest is the body accepted by POST /v1/pipeline/run: a raw transcript
// plus optional per-run overrides of the replacement rules, normalization
// settings, and caption settings.
type runRequest struct {
	Transcript       caption.Transcript           `json:"transcript" binding:"required"`
	ReplacementRules []caption.ReplacementRule    `json:"replacementRules"`
	Normalization    *caption.NormalizationConfig `json:"normalization"`
	Captions         *caption.CaptionsConfig      `json:"captions"`
}

// runResponse mirrors caption.Result plus the persisted run ID.
type runResponse struct {
	RunID         string                     `json:"runId"`
	Transcript    caption.Transcript         `json:"transcript"`
	Captions      caption.CaptionBundle      `json:"captions"`
	Replacement   caption.ReplacementStats   `json:"replacement"`
	Refinement    *caption.RefinementStats   `json:"refinement,omitempty"`
	Normalization caption.NormalizationStats `json:"normalization"`
}

// handleRun runs the configured pipeline over the posted transcript,
// persists a run record, and returns the refined transcript and captions.
//
// @Summary      Run the refinement pipeline
// @Description  Applies replacement rules, optional LLM refinement, and normalization to a transcript, then renders VTT/SRT/JSON captions.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Param        request  body      runRequest  true  "Transcript and optional per-run overrides"
// @Success      200      {object}  runResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /v1/pipeline/run [post]
func (s *Server) handleRun(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run := store.NewRun()
	run.SegmentsIn = len(req.Transcript.Segments)
	run.InputHash = hashTranscript(req.Transcript)

	pipeline := s.pipelineFor(req)

	result, err := pipeline.Run(c.Request.Context(), req.Transcript)
	if err != nil {
		run.Status = "error"
		run.ErrorMessage = err.Error()
		s.store.Save(run)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "runId": run.ID})
		return
	}

	run.Status = "ok"
	run.SegmentsModified = result.Replacement.SegmentsModified
	run.WordChangeCount = result.Replacement.WordChangeCount
	run.NormalizationSplits = result.Normalization.Splits
	run.VTTBytes = len(result.Captions.VTT)
	run.SRTBytes = len(result.Captions.SRT)
	run.JSONBytes = len(result.Captions.JSON)
	if result.Refinement != nil {
		run.LLMUsed = true
		run.SegmentsUpdated = result.Refinement.SegmentsUpdated
		run.SpeakersIdentified = result.Refinement.SpeakersIdentified
	}
	s.store.Save(run)

	c.JSON(http.StatusOK, runResponse{
		RunID:         run.ID,
		Transcript:    result.Transcript,
		Captions:      result.Captions,
		Replacement:   result.Replacement,
		Refinement:    result.Refinement,
		Normalization: result.Normalization,
	})
}

// pipelineFor returns the server's configured base pipeline unless req carries
// any per-request override, in which case it builds a one-off pipeline from
// those overrides plus the server's default LLM wiring.
func (s *Server) pipelineFor(req runRequest) *caption.Pipeline {
	if req.ReplacementRules == nil && req.Normalization == nil && req.Captions == nil {
		return s.pipeline
	}

	opts := []caption.PipelineOption{}
	if req.ReplacementRules != nil {
		opts = append(opts, caption.WithReplacementRules(req.ReplacementRules))
	}
	if req.Normalization != nil {
		opts = append(opts, caption.WithNormalization(*req.Normalization))
	}
	if req.Captions != nil {
		opts = append(opts, caption.WithCaptions(*req.Captions))
	}
	if s.llmCfg != nil && s.llmInvoke != nil {
		opts = append(opts, caption.WithLLMRefinement(*s.llmCfg, s.llmInvoke))
	}
	return caption.NewPipeline(opts...)
}

// handleListRuns returns the most recent run records, newest first.
//
// @Summary      List pipeline runs
// @Description  Returns the 50 most recently persisted pipeline runs, newest first.
// @Tags         runs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]store.Run
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/runs [get]
func (s *Server) handleListRuns(c *gin.Context) {
	runs, err := s.store.List(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// handleGetRun returns a single run record by ID.
//
// @Summary      Get a pipeline run
// @Description  Returns one persisted run record by its ID.
// @Tags         runs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Run ID"
// @Success      200  {object}  store.Run
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/runs/{id} [get]
func (s *Server) handleGetRun(c *gin.Context) {
	run, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}

func hashTranscript(t caption.Transcript) string {
	raw, err := json.Marshal(t)
	if err != nil {
		logger.Warn("api: failed to hash transcript", "error", err)
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
