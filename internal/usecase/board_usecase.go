package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"AidBoard-App/internal/domain/helper"
	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
	"AidBoard-App/internal/domain/service"
)

// BoardState 掲示板のアプリケーション状態（ページ・タブ・検索語）のスナップショット
type BoardState struct {
	Page  model.PageType `json:"page"`
	Tab   model.TabType  `json:"tab"`
	Query string         `json:"query"`
}

// BoardUseCase は掲示板のコアを統括するユースケース。
// ローカル投稿キャッシュとアプリケーション状態を所有し、
// 同期クライアント・ビュー導出・楽観的ミューテーションを調停する
type BoardUseCase interface {
	// Start 初回フェッチを実行し、変更フィードの購読を開始する
	Start(ctx context.Context) error

	// Close 変更フィードの購読を解除する
	Close() error

	// Refresh ストアから全投稿を再取得してキャッシュを全置換する。
	// 失敗時はキャッシュを変更せず、エラーも表面化させない
	Refresh(ctx context.Context)

	// VisiblePosts 現在の状態（ページ・タブ・検索語）での表示用リストを導出する
	VisiblePosts() []model.Post

	// VisibleFor 指定した状態での表示用リストを導出し、状態も更新する
	VisibleFor(page model.PageType, tab model.TabType, query string) []model.Post

	// Markers キャッシュ全体から地図マーカーを導出する
	Markers() []service.Marker

	// MapView マーカー全体が収まる地図表示領域を計算する
	MapView() service.MapView

	// CreatePost 投稿を楽観的に作成する。キャッシュへの反映は即時、永続化は非同期
	CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)

	// ToggleStatus 投稿の受付状態を楽観的に反転する
	ToggleStatus(ctx context.Context, id string) (*model.Post, error)

	// SetPage 閲覧ページを切り替える（タブはallにリセットされる）
	SetPage(page model.PageType)

	// SetTab ページ内のタブを切り替える（現在ページで無効なタブは無視）
	SetTab(tab model.TabType)

	// SetQuery 検索語を設定する
	SetQuery(query string)

	// State 現在のアプリケーション状態を取得する
	State() BoardState

	// Tabs 現在ページで選択可能なタブ一覧を取得する
	Tabs() []model.TabType
}

// boardUseCaseImpl BoardUseCaseの実装
type boardUseCaseImpl struct {
	postsRepo  repository.PostsRepository
	changeFeed repository.ChangeFeed
	viewSvc    service.ViewService
	markerSvc  service.MarkerService

	mu    sync.Mutex
	cache []model.Post
	page  model.PageType
	tab   model.TabType
	query string

	// fetchSeq はフェッチ発行ごとに増える通し番号。appliedSeqより古い
	// フェッチ結果は破棄し、遅いフェッチが新しいデータを上書きする競合を防ぐ
	fetchSeq   uint64
	appliedSeq uint64
}

// NewBoardUseCase 新しいBoardUseCaseインスタンスを作成。
// キャッシュは初期データで開始し、初回フェッチ成功時に全置換される
func NewBoardUseCase(
	postsRepo repository.PostsRepository,
	changeFeed repository.ChangeFeed,
	viewSvc service.ViewService,
	markerSvc service.MarkerService,
) BoardUseCase {
	cache := make([]model.Post, len(model.SeedPosts))
	copy(cache, model.SeedPosts)

	return &boardUseCaseImpl{
		postsRepo:  postsRepo,
		changeFeed: changeFeed,
		viewSvc:    viewSvc,
		markerSvc:  markerSvc,
		cache:      cache,
		page:       model.PageInfo,
		tab:        model.TabAll,
	}
}

// Start 初回フェッチ後、変更通知のたびに再フェッチする購読を確立する。
// 購読の確立失敗はログのみでリトライしない
func (u *boardUseCaseImpl) Start(ctx context.Context) error {
	u.Refresh(ctx)

	if u.changeFeed == nil {
		log.Printf("⚠️ 変更フィードが未設定のため、リアルタイム同期なしで動作します")
		return nil
	}

	if err := u.changeFeed.Subscribe(ctx, func() {
		u.Refresh(ctx)
	}); err != nil {
		log.Printf("⚠️ 変更フィードの購読確立に失敗: %v", err)
	}
	return nil
}

// Close 変更フィードの購読を解除する
func (u *boardUseCaseImpl) Close() error {
	if u.changeFeed == nil {
		return nil
	}
	return u.changeFeed.Close()
}

// Refresh 全件フェッチしてキャッシュを置換する。差分マージは行わない。
// 通し番号が最後に適用されたものより古い結果は破棄する
func (u *boardUseCaseImpl) Refresh(ctx context.Context) {
	seq := atomic.AddUint64(&u.fetchSeq, 1)

	posts, err := u.postsRepo.GetAllOrdered(ctx)
	if err != nil {
		// キャッシュは直前の状態のまま残し、ユーザーにはエラーを見せない
		log.Printf("⚠️ 投稿の取得に失敗、キャッシュを維持: %v", err)
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if seq <= u.appliedSeq {
		log.Printf("⏭️ 古いフェッチ結果を破棄 (seq=%d, applied=%d)", seq, u.appliedSeq)
		return
	}
	u.appliedSeq = seq
	u.cache = posts
}

// VisiblePosts 現在の状態で表示用リストを導出する
func (u *boardUseCaseImpl) VisiblePosts() []model.Post {
	u.mu.Lock()
	cache := u.snapshotLocked()
	page, tab, query := u.page, u.tab, u.query
	u.mu.Unlock()

	return u.viewSvc.DeriveVisible(cache, page, tab, query)
}

// VisibleFor 状態を更新したうえで表示用リストを導出する
func (u *boardUseCaseImpl) VisibleFor(page model.PageType, tab model.TabType, query string) []model.Post {
	u.SetPage(page)
	u.SetTab(tab)
	u.SetQuery(query)
	return u.VisiblePosts()
}

// Markers キャッシュ全体（ページ・タブ・検索語とは独立）からマーカーを導出する
func (u *boardUseCaseImpl) Markers() []service.Marker {
	u.mu.Lock()
	cache := u.snapshotLocked()
	u.mu.Unlock()

	return u.markerSvc.BuildMarkers(cache)
}

// MapView マーカー全体のfit対象領域を計算する
func (u *boardUseCaseImpl) MapView() service.MapView {
	return u.markerSvc.FitView(u.Markers())
}

// CreatePost 楽観的作成。一時IDでキャッシュ先頭に挿入し、永続化は
// バックグラウンドで行う。永続化失敗時はロールバックせず、
// Unsyncedフラグを立てて次回の再フェッチによる整合を待つ
func (u *boardUseCaseImpl) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if err := validateCreatePostRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	post := model.Post{
		ID:          fmt.Sprintf("temp_post_%s", uuid.New().String()),
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Contact:     req.Contact,
		Coordinates: req.Coordinates,
		Timestamp:   helper.JustNowLabel,
		Urgent:      model.IsUrgentCategory(req.Category),
		Status:      model.StatusOpen,
	}

	u.mu.Lock()
	u.cache = append([]model.Post{post}, u.cache...)
	// 互助區カテゴリの投稿は、投稿者が自分の投稿をすぐ見られるようにページを切り替える
	if model.PageOf(post.Category) == model.PageAid && u.page != model.PageAid {
		u.page = model.PageAid
		u.tab = model.TabAll
	}
	u.mu.Unlock()

	go func() {
		// 永続化には一時IDを含めない（ストア側の採番に任せる）
		if err := u.postsRepo.Insert(context.Background(), &post); err != nil {
			log.Printf("⚠️ 投稿の永続化に失敗 (id=%s): %v", post.ID, err)
			u.markUnsynced(post.ID)
		}
	}()

	return &post, nil
}

// ToggleStatus 楽観的に受付状態を反転し、永続化はバックグラウンドで行う
func (u *boardUseCaseImpl) ToggleStatus(ctx context.Context, id string) (*model.Post, error) {
	u.mu.Lock()
	var toggled *model.Post
	for i := range u.cache {
		if u.cache[i].ID == id {
			u.cache[i].Status = u.cache[i].ToggledStatus()
			copied := u.cache[i]
			toggled = &copied
			break
		}
	}
	u.mu.Unlock()

	if toggled == nil {
		return nil, fmt.Errorf("投稿ID %s が見つかりません", id)
	}

	newStatus := toggled.Status
	go func() {
		if err := u.postsRepo.UpdateStatusByID(context.Background(), id, newStatus); err != nil {
			log.Printf("⚠️ 投稿状態の永続化に失敗 (id=%s): %v", id, err)
			u.markUnsynced(id)
		}
	}()

	return toggled, nil
}

// SetPage ページ切り替え。ページが変わったらタブはallに戻す
func (u *boardUseCaseImpl) SetPage(page model.PageType) {
	if page != model.PageInfo && page != model.PageAid {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.page != page {
		u.page = page
		u.tab = model.TabAll
	}
}

// SetTab タブ切り替え。現在ページで無効なカテゴリは無視する
func (u *boardUseCaseImpl) SetTab(tab model.TabType) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if tab == model.TabAll {
		u.tab = tab
		return
	}
	if model.IsCategoryInPage(model.Category(tab), u.page) {
		u.tab = tab
	}
}

// SetQuery 検索語を設定する
func (u *boardUseCaseImpl) SetQuery(query string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.query = query
}

// State 現在の状態のスナップショットを取得する
func (u *boardUseCaseImpl) State() BoardState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return BoardState{Page: u.page, Tab: u.tab, Query: u.query}
}

// Tabs 現在ページで選択可能なタブ一覧を取得する
func (u *boardUseCaseImpl) Tabs() []model.TabType {
	u.mu.Lock()
	page := u.page
	u.mu.Unlock()
	return u.viewSvc.TabsForPage(page)
}

// markUnsynced 永続化に失敗した楽観的エントリに未同期フラグを立てる。
// 次回の全置換フェッチで自然に解消される
func (u *boardUseCaseImpl) markUnsynced(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.cache {
		if u.cache[i].ID == id {
			u.cache[i].Unsynced = true
			return
		}
	}
}

// snapshotLocked キャッシュのコピーを返す（呼び出し側でロック済みであること）
func (u *boardUseCaseImpl) snapshotLocked() []model.Post {
	snapshot := make([]model.Post, len(u.cache))
	copy(snapshot, u.cache)
	return snapshot
}

// validateCreatePostRequest 投稿作成リクエストのバリデーション
func validateCreatePostRequest(req *model.CreatePostRequest) error {
	if !model.IsValidCategory(req.Category) {
		return fmt.Errorf("無効なカテゴリです: %s", req.Category)
	}
	if req.Title == "" {
		return fmt.Errorf("タイトルは必須です")
	}
	if req.Description == "" {
		return fmt.Errorf("説明は必須です")
	}
	if req.Location == "" {
		return fmt.Errorf("場所は必須です")
	}
	return nil
}
