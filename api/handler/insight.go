package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/zenai/backend/pkg/httpcontext"
	insightUC "github.com/zenai/backend/usecase/insight"
)

type InsightHandler struct {
	baseHandler
	uc *insightUC.UseCase
}

func NewInsightHandler(uc *insightUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Analyze pending tasks for a procrastination suggestion
// @Tags insight
// @Router /api/v1/insight [get]
func (h *InsightHandler) GetInsight(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	insight, err := h.uc.Analyze(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, insight)
}
