package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/usecase"
)

// BoardHandler 掲示板に関するHTTPハンドラー
type BoardHandler struct {
	board usecase.BoardUseCase
}

// NewBoardHandler BoardHandlerの新しいインスタンスを作成
func NewBoardHandler(board usecase.BoardUseCase) *BoardHandler {
	return &BoardHandler{
		board: board,
	}
}

// GetPosts GET /posts - 表示用の投稿リストを取得
// クエリパラメータ page / tab / q を省略した場合は現在の状態を引き継ぐ
func (h *BoardHandler) GetPosts(c *gin.Context) {
	state := h.board.State()

	page := state.Page
	if v := c.Query("page"); v != "" {
		page = model.PageType(v)
		if page != model.PageInfo && page != model.PageAid {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "page must be 'info' or 'aid'",
			})
			return
		}
	}

	tab := state.Tab
	if v, ok := c.GetQuery("tab"); ok {
		tab = model.TabType(v)
	} else if page != state.Page {
		// ページ切り替え時はタブをallに戻す
		tab = model.TabAll
	}

	query := state.Query
	if v, ok := c.GetQuery("q"); ok {
		query = v
	}

	posts := h.board.VisibleFor(page, tab, query)

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"state": h.board.State(),
		"tabs":  h.board.Tabs(),
	})
}

// CreatePost POST /posts - 投稿の楽観的作成
func (h *BoardHandler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	post, err := h.board.CreatePost(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Failed to create post: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"post":  post,
		"state": h.board.State(),
	})
}

// ToggleStatus PATCH /posts/:id/status - 受付状態の楽観的な反転
func (h *BoardHandler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Post ID is required",
		})
		return
	}

	post, err := h.board.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetMarkers GET /map/markers - 地図マーカーとfit対象領域を取得
func (h *BoardHandler) GetMarkers(c *gin.Context) {
	markers := h.board.Markers()

	c.JSON(http.StatusOK, gin.H{
		"markers": markers,
		"view":    h.board.MapView(),
	})
}

// GetContacts GET /contacts - 緊急連絡先の一覧を取得
func (h *BoardHandler) GetContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": model.EmergencyContacts})
}
