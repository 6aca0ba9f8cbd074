// Package transport provides the validator-node server (by ginext) with handlers to serve endpoints
package transport

import (
	"errors"
	"net/http"

	"github.com/UnendingLoop/ValidateOutput/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

// bodySlack covers JSON quoting and the pattern on top of the content limit.
const bodySlack = 64 << 10

type Validator interface {
	ValidateContent(pattern, content string) (*model.ValidationResult, error)
}

type handlers struct {
	validator  Validator
	maxContent int64
	logger     *zap.Logger
}

func NewNodeServer(addr string, v Validator, maxContent int64, logger *zap.Logger) *http.Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{validator: v, maxContent: maxContent, logger: logger}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/validate", h.ReceiveValidation)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h *handlers) HealthCheck(ctx *ginext.Context) {
	h.logger.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h *handlers) ReceiveValidation(ctx *ginext.Context) {
	requestID := uuid.Generate().String()
	ctx.Header("X-Request-ID", requestID)

	// ограничиваем тело запроса, чтобы не читать в память произвольный объем
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxContent*2+bodySlack)

	var req model.ValidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"request_id": requestID, "error": "request body too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"request_id": requestID, "error": "failed to parse request body: " + err.Error()})
		return
	}

	if int64(len(req.Content)) > h.maxContent {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"request_id": requestID, "error": "content exceeds max_content_bytes"})
		return
	}

	res, err := h.validator.ValidateContent(req.Pattern, req.Content)
	if err != nil {
		kind := model.KindOf(err)
		h.logger.Info("validation failed",
			zap.String("request_id", requestID),
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
		ctx.JSON(http.StatusUnprocessableEntity, model.ValidateResponse{
			RequestID: requestID,
			Valid:     false,
			Kind:      kind.String(),
			Error:     err.Error(),
		})
		return
	}

	h.logger.Info("validation passed",
		zap.String("request_id", requestID),
		zap.Int("keywords", len(res.Keywords)),
	)
	ctx.JSON(http.StatusOK, model.ValidateResponse{
		RequestID:   requestID,
		Valid:       true,
		Keywords:    res.Keywords,
		Fingerprint: res.Fingerprint,
	})
}
