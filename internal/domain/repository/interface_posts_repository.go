package repository

import (
	"context"

	"AidBoard-App/internal/domain/model"
)

// PostsRepository は投稿テーブル（Record Store）への読み書きの責務を持つリポジトリインターフェース。
// トランスポートやクエリ言語には依存せず、4つの能力契約のみを定義する。
type PostsRepository interface {
	// GetAllOrdered 全投稿をcreated_at降順で取得する
	GetAllOrdered(ctx context.Context) ([]model.Post, error)

	// Insert 投稿を新規作成する（IDとcreated_atはストア側で採番される）
	Insert(ctx context.Context, post *model.Post) error

	// UpdateStatusByID 指定IDの投稿の受付状態を更新する
	UpdateStatusByID(ctx context.Context, id string, status model.PostStatus) error
}
