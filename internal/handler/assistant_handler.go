package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
)

// AssistantHandler 防災アシスタントに関するHTTPハンドラー
type AssistantHandler struct {
	advice repository.AdviceRepository
}

// NewAssistantHandler AssistantHandlerの新しいインスタンスを作成
func NewAssistantHandler(advice repository.AdviceRepository) *AssistantHandler {
	return &AssistantHandler{
		advice: advice,
	}
}

// GetAdvice POST /assistant/advice - 安全アドバイスを取得。
// 生成に失敗しても固定フォールバック文言を返し、エラー応答にはしない
func (h *AssistantHandler) GetAdvice(c *gin.Context) {
	var req model.AdviceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "query is required",
		})
		return
	}

	advice := h.advice.GetSafetyAdvice(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, model.AdviceResponse{Advice: advice})
}
