package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/usecase"
)

// AdminAuthMiddleware 管理者トークンを検証するミドルウェア。
// トークン不一致の場合は部分的な管理UIも見せず、アクセス拒否で打ち切る
func AdminAuthMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Token")
		if supplied == "" {
			// Authorization: Bearer <token> 形式も受け付ける
			auth := c.GetHeader("Authorization")
			supplied = strings.TrimPrefix(auth, "Bearer ")
		}

		if adminToken == "" || supplied != adminToken {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "access_denied",
				"message": "You do not have permission to view this page.",
			})
			return
		}
		c.Next()
	}
}

// AdminHandler 管理者操作に関するHTTPハンドラー
type AdminHandler struct {
	admin usecase.AdminUseCase
}

// NewAdminHandler AdminHandlerの新しいインスタンスを作成
func NewAdminHandler(admin usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		admin: admin,
	}
}

// ListPosts GET /admin/posts - 全投稿を管理情報つきで取得
func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.admin.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list posts: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// verifyRequest 認証フラグ反転リクエスト（currentは現在の値）
type verifyRequest struct {
	Current bool `json:"current"`
}

// ToggleVerified PUT /admin/posts/:id/verify - 認証フラグの反転
func (h *AdminHandler) ToggleVerified(c *gin.Context) {
	id := c.Param("id")

	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.admin.ToggleVerified(c.Request.Context(), id, req.Current); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to toggle verified: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// statusRequest 受付状態の強制設定リクエスト
type statusRequest struct {
	Status model.PostStatus `json:"status"`
}

// ForceStatus PUT /admin/posts/:id/status - 受付状態の強制設定
func (h *AdminHandler) ForceStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.admin.ForceStatus(c.Request.Context(), id, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Failed to set status: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeletePost DELETE /admin/posts/:id - 投稿の物理削除
func (h *AdminHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	if err := h.admin.DeletePost(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to delete post: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
