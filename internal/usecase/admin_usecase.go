package usecase

import (
	"context"
	"fmt"
	"log"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
)

// AdminUseCase は管理者操作を統括するユースケース。
// 書き込みは楽観的更新を経由せず、Record Storeに直接反映される
type AdminUseCase interface {
	// ListPosts 全投稿を管理情報つきで取得する
	ListPosts(ctx context.Context) ([]repository.AdminPost, error)

	// ToggleVerified 認証済みフラグを反転する
	ToggleVerified(ctx context.Context, id string, current bool) error

	// ForceStatus 受付状態を強制的に設定する
	ForceStatus(ctx context.Context, id string, status model.PostStatus) error

	// DeletePost 投稿を物理削除する
	DeletePost(ctx context.Context, id string) error
}

// adminUseCaseImpl AdminUseCaseの実装
type adminUseCaseImpl struct {
	adminRepo repository.AdminPostsRepository
}

// NewAdminUseCase 新しいAdminUseCaseインスタンスを作成
func NewAdminUseCase(adminRepo repository.AdminPostsRepository) AdminUseCase {
	return &adminUseCaseImpl{
		adminRepo: adminRepo,
	}
}

// ListPosts 全投稿をcreated_at降順で取得する
func (u *adminUseCaseImpl) ListPosts(ctx context.Context) ([]repository.AdminPost, error) {
	posts, err := u.adminRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("管理用投稿一覧の取得失敗: %w", err)
	}
	return posts, nil
}

// ToggleVerified 現在値の反対を書き込む
func (u *adminUseCaseImpl) ToggleVerified(ctx context.Context, id string, current bool) error {
	if err := u.adminRepo.SetVerified(ctx, id, !current); err != nil {
		return fmt.Errorf("認証フラグの反転失敗: %w", err)
	}
	log.Printf("🛡️ 管理者操作: 投稿 %s の認証フラグを %t に変更", id, !current)
	return nil
}

// ForceStatus 受付状態を強制設定する
func (u *adminUseCaseImpl) ForceStatus(ctx context.Context, id string, status model.PostStatus) error {
	if status != model.StatusOpen && status != model.StatusClosed {
		return fmt.Errorf("無効な受付状態です: %s", status)
	}
	if err := u.adminRepo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("受付状態の強制設定失敗: %w", err)
	}
	log.Printf("🛡️ 管理者操作: 投稿 %s の受付状態を %s に変更", id, status)
	return nil
}

// DeletePost 投稿を物理削除する（通常ユーザーには公開しない操作）
func (u *adminUseCaseImpl) DeletePost(ctx context.Context, id string) error {
	if err := u.adminRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("投稿の削除失敗: %w", err)
	}
	log.Printf("🛡️ 管理者操作: 投稿 %s を削除", id)
	return nil
}
