// Package api exposes the refinement pipeline over HTTP using gin, with a
// JWT-guarded admin surface for run history and swagger documentation.
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"captionforge/internal/caption"
	"captionforge/internal/store"
)

// Server wires the base pipeline, run store, JWT secret, and default LLM
// invoker into a gin engine. Per-request overrides layer on top of the base
// LLM wiring in handleRun; llmCfg/llmInvoke may be nil to disable the stage.
type Server struct {
	pipeline     *caption.Pipeline
	store        *store.Store
	jwtSecret    []byte
	adminKeyHash string
	llmCfg       *caption.LLMRefinementConfig
	llmInvoke    caption.LLMInvoker
}

// NewServer constructs a Server. jwtSecret may be empty in development;
// admin routes then reject every request (fail closed, never open). llmCfg
// and invoke may both be nil to run with LLM refinement disabled by default.
func NewServer(pipeline *caption.Pipeline, st *store.Store, jwtSecret string, llmCfg *caption.LLMRefinementConfig, invoke caption.LLMInvoker) *Server {
	return &Server{pipeline: pipeline, store: st, jwtSecret: []byte(jwtSecret), llmCfg: llmCfg, llmInvoke: invoke}
}

// WithAdminKeyHash configures a bcrypt-hashed static admin key (see
// HashAdminKey) as an alternative credential to JWT for the admin routes,
// checked via the X-Admin-Key header.
func (s *Server) WithAdminKeyHash(hash string) *Server {
	s.adminKeyHash = hash
	return s
}

// Router builds the gin engine: public pipeline-run endpoint, JWT-guarded
// run-history endpoints, and swagger docs.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	v1.POST("/pipeline/run", s.handleRun)

	admin := v1.Group("/runs")
	admin.Use(s.requireJWT())
	admin.GET("", s.handleListRuns)
	admin.GET("/:id", s.handleGetRun)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
