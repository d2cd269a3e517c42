package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
	"AidBoard-App/internal/infrastructure/database"
)

// PostgresAdminRepository PostgreSQL直接接続を使用した管理者リポジトリ。
// 楽観的更新の経路を通らず、Record Storeに即時・権威的に書き込む
type PostgresAdminRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresAdminRepository 新しいPostgresAdminRepositoryインスタンスを作成
func NewPostgresAdminRepository(client *database.PostgreSQLClient) repository.AdminPostsRepository {
	return &PostgresAdminRepository{
		client: client,
	}
}

// ListAll 全投稿を管理情報つきでcreated_at降順に取得する
func (r *PostgresAdminRepository) ListAll(ctx context.Context) ([]repository.AdminPost, error) {
	query := `
		SELECT id, category, title, description, location, lat, lng,
		       urgent, is_verified, contact, status, created_at
		FROM posts
		ORDER BY created_at DESC`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("管理用投稿一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var result []repository.AdminPost
	for rows.Next() {
		var (
			post      model.Post
			lat, lng  sql.NullFloat64
			contact   sql.NullString
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(
			&post.ID, &post.Category, &post.Title, &post.Description, &post.Location,
			&lat, &lng, &post.Urgent, &post.Verified, &contact, &status, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("投稿行のスキャン失敗: %w", err)
		}

		post.Status = model.PostStatus(status)
		if lat.Valid && lng.Valid {
			post.Coordinates = &model.LatLng{Lat: lat.Float64, Lng: lng.Float64}
		}
		if contact.Valid {
			post.Contact = contact.String
		}

		result = append(result, repository.AdminPost{
			Post:      post,
			CreatedAt: createdAt.Format("2006-01-02 15:04"),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("投稿一覧の走査失敗: %w", err)
	}
	return result, nil
}

// SetVerified 認証済みフラグを設定する
func (r *PostgresAdminRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	result, err := r.client.DB.ExecContext(ctx,
		`UPDATE posts SET is_verified = $1 WHERE id = $2`, verified, id)
	if err != nil {
		return fmt.Errorf("認証フラグの更新失敗: %w", err)
	}
	return checkAffected(result, id)
}

// SetStatus 受付状態を強制的に設定する
func (r *PostgresAdminRepository) SetStatus(ctx context.Context, id string, status model.PostStatus) error {
	result, err := r.client.DB.ExecContext(ctx,
		`UPDATE posts SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("投稿状態の強制更新失敗: %w", err)
	}
	return checkAffected(result, id)
}

// Delete 投稿を物理削除する
func (r *PostgresAdminRepository) Delete(ctx context.Context, id string) error {
	result, err := r.client.DB.ExecContext(ctx,
		`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("投稿の削除失敗: %w", err)
	}
	return checkAffected(result, id)
}

// checkAffected 対象行が存在したかを確認する
func checkAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("更新結果の確認失敗: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("投稿ID %s が見つかりません", id)
	}
	return nil
}
