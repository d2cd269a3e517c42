package repository

import (
	"context"

	"AidBoard-App/internal/domain/model"
)

// AdminPost 管理画面用の投稿行（サーバー管理のcreated_atを含む）
type AdminPost struct {
	Post      model.Post
	CreatedAt string
}

// AdminPostsRepository は管理者操作の責務を持つリポジトリインターフェース。
// 楽観的更新の経路を通らず、Record Storeへ直接・即時に書き込む。
type AdminPostsRepository interface {
	// ListAll 全投稿を管理情報つきでcreated_at降順に取得する
	ListAll(ctx context.Context) ([]AdminPost, error)

	// SetVerified 認証済みフラグを設定する
	SetVerified(ctx context.Context, id string, verified bool) error

	// SetStatus 受付状態を強制的に設定する
	SetStatus(ctx context.Context, id string, status model.PostStatus) error

	// Delete 投稿を物理削除する
	Delete(ctx context.Context, id string) error
}
