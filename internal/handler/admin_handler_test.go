package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
	"AidBoard-App/internal/usecase"
)

// stubAdminRepo テスト用の管理リポジトリ（呼び出し内容を記録する）
type stubAdminRepo struct {
	mu       sync.Mutex
	posts    []repository.AdminPost
	verified map[string]bool
	statuses map[string]model.PostStatus
	deleted  []string
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{
		posts: []repository.AdminPost{
			{
				Post:      model.Post{ID: "a1", Category: model.CategoryGovernment, Title: "庇護中心開放", Status: model.StatusOpen, Verified: true},
				CreatedAt: "2026-08-27 09:30",
			},
			{
				Post:      model.Post{ID: "a2", Category: model.CategoryHelpRequest, Title: "急需輪椅", Status: model.StatusOpen, Urgent: true},
				CreatedAt: "2026-08-27 08:10",
			},
		},
		verified: make(map[string]bool),
		statuses: make(map[string]model.PostStatus),
	}
}

func (r *stubAdminRepo) ListAll(ctx context.Context) ([]repository.AdminPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]repository.AdminPost, len(r.posts))
	copy(snapshot, r.posts)
	return snapshot, nil
}

func (r *stubAdminRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verified[id] = verified
	return nil
}

func (r *stubAdminRepo) SetStatus(ctx context.Context, id string, status model.PostStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[id] = status
	return nil
}

func (r *stubAdminRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	return nil
}

const testAdminToken = "test-admin-token"

func setupAdminRouter(t *testing.T, repo *stubAdminRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(usecase.NewAdminUseCase(repo))
	r := gin.New()
	admin := r.Group("/admin", AdminAuthMiddleware(testAdminToken))
	admin.GET("/posts", h.ListPosts)
	admin.PUT("/posts/:id/verify", h.ToggleVerified)
	admin.PUT("/posts/:id/status", h.ForceStatus)
	admin.DELETE("/posts/:id", h.DeletePost)
	return r
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Run("トークンなしはアクセス拒否", func(t *testing.T) {
		router := setupAdminRouter(t, newStubAdminRepo())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/posts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "access_denied", resp["error"])
		assert.Equal(t, "You do not have permission to view this page.", resp["message"])
	})

	t.Run("不正なトークンはアクセス拒否", func(t *testing.T) {
		router := setupAdminRouter(t, newStubAdminRepo())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/posts", nil)
		req.Header.Set("X-Admin-Token", "wrong-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Bearer形式のトークンも受け付ける", func(t *testing.T) {
		router := setupAdminRouter(t, newStubAdminRepo())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/posts", nil)
		req.Header.Set("Authorization", "Bearer "+testAdminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("トークン未設定のサーバーは常時拒否", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/admin/posts", AdminAuthMiddleware(""), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/posts", nil)
		req.Header.Set("X-Admin-Token", "")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminHandler_ListPosts(t *testing.T) {
	t.Run("全投稿を管理情報つきで取得できる", func(t *testing.T) {
		router := setupAdminRouter(t, newStubAdminRepo())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin/posts", nil)
		req.Header.Set("X-Admin-Token", testAdminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Posts []repository.AdminPost `json:"posts"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, len(resp.Posts))
		assert.Equal(t, "a1", resp.Posts[0].Post.ID)
		assert.Equal(t, "2026-08-27 09:30", resp.Posts[0].CreatedAt)
	})
}

func TestAdminHandler_ToggleVerified(t *testing.T) {
	t.Run("現在値の反対が書き込まれる", func(t *testing.T) {
		repo := newStubAdminRepo()
		router := setupAdminRouter(t, repo)

		body, _ := json.Marshal(map[string]bool{"current": true})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/admin/posts/a1/verify", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Admin-Token", testAdminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, repo.verified["a1"])
	})
}

func TestAdminHandler_ForceStatus(t *testing.T) {
	t.Run("受付状態を強制設定できる", func(t *testing.T) {
		repo := newStubAdminRepo()
		router := setupAdminRouter(t, repo)

		body, _ := json.Marshal(map[string]string{"status": "closed"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/admin/posts/a2/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Admin-Token", testAdminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.StatusClosed, repo.statuses["a2"])
	})

	t.Run("無効な状態値は400", func(t *testing.T) {
		repo := newStubAdminRepo()
		router := setupAdminRouter(t, repo)

		body, _ := json.Marshal(map[string]string{"status": "archived"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/admin/posts/a2/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Admin-Token", testAdminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, len(repo.statuses))
	})
}

func TestAdminHandler_DeletePost(t *testing.T) {
	t.Run("投稿を削除できる", func(t *testing.T) {
		repo := newStubAdminRepo()
		router := setupAdminRouter(t, repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/admin/posts/a2", nil)
		req.Header.Set("X-Admin-Token", testAdminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"a2"}, repo.deleted)
	})
}
