package service

import (
	"strings"

	"AidBoard-App/internal/domain/model"
)

// ViewService は表示用リストの導出を行う純粋なサービス。
// 副作用を持たず、同じ入力に対して常に同じ結果を返す。
type ViewService interface {
	// DeriveVisible キャッシュ全体から（ページ、タブ、検索語）で絞り込んだ表示用リストを導出する
	DeriveVisible(posts []model.Post, page model.PageType, tab model.TabType, query string) []model.Post

	// TabsForPage 指定ページで選択可能なタブ一覧を取得する（先頭は常にall）
	TabsForPage(page model.PageType) []model.TabType
}

type viewServiceImpl struct{}

// NewViewService ViewServiceの新しいインスタンスを作成
func NewViewService() ViewService {
	return &viewServiceImpl{}
}

// DeriveVisible フィルタリングパイプラインを実行する。
// 1. ページフィルタ（静的なカテゴリ分類による絞り込み）
// 2. タブフィルタ（allの場合は何もしない）
// 3. 検索フィルタ（タイトル・本文・場所に対する大文字小文字を区別しない部分一致）
// 4. 安定ソート（openがclosedより前。各グループ内は入力順を保持）
func (s *viewServiceImpl) DeriveVisible(posts []model.Post, page model.PageType, tab model.TabType, query string) []model.Post {
	result := make([]model.Post, 0, len(posts))

	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	for _, post := range posts {
		if !model.IsCategoryInPage(post.Category, page) {
			continue
		}
		if tab != model.TabAll && post.Category != model.Category(tab) {
			continue
		}
		if lowerQuery != "" && !matchesQuery(&post, lowerQuery) {
			continue
		}
		result = append(result, post)
	}

	return sortOpenFirst(result)
}

// TabsForPage ページに属するカテゴリをタブとして返す
func (s *viewServiceImpl) TabsForPage(page model.PageType) []model.TabType {
	categories := model.PageCategoryMap[page]
	tabs := make([]model.TabType, 0, len(categories)+1)
	tabs = append(tabs, model.TabAll)
	for _, c := range categories {
		tabs = append(tabs, model.TabType(c))
	}
	return tabs
}

// matchesQuery タイトル・本文・場所のいずれかに検索語が含まれるかチェック。
// 検索語と各フィールドは小文字に正規化してから比較する
func matchesQuery(post *model.Post, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(post.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(post.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(post.Location), lowerQuery)
}

// sortOpenFirst open投稿をclosed投稿より前に並べる安定ソート。
// 受付状態以外の比較キーは持たず、各グループ内の相対順序は入力順のまま
func sortOpenFirst(posts []model.Post) []model.Post {
	sorted := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if post.IsOpen() {
			sorted = append(sorted, post)
		}
	}
	for _, post := range posts {
		if !post.IsOpen() {
			sorted = append(sorted, post)
		}
	}
	return sorted
}
