package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"

	"AidBoard-App/internal/domain/helper"
	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
	"AidBoard-App/internal/infrastructure/database"
)

// postRow postsテーブルの行（サーバー管理のcreated_atを含む）
type postRow struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	Urgent      bool      `json:"urgent"`
	IsVerified  bool      `json:"is_verified"`
	Contact     *string   `json:"contact"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// postInsertRow 挿入用の行。idとcreated_atはストア側で採番されるため含めない
type postInsertRow struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Urgent      bool     `json:"urgent"`
	IsVerified  bool     `json:"is_verified"`
	Contact     *string  `json:"contact,omitempty"`
	Status      string   `json:"status"`
}

// SupabasePostsRepository Supabase（PostgREST）を使用した投稿リポジトリ
type SupabasePostsRepository struct {
	client *database.SupabaseClient
}

// NewSupabasePostsRepository 新しいSupabasePostsRepositoryインスタンスを作成
func NewSupabasePostsRepository(client *database.SupabaseClient) repository.PostsRepository {
	return &SupabasePostsRepository{
		client: client,
	}
}

// GetAllOrdered 全投稿をcreated_at降順で取得する
func (r *SupabasePostsRepository) GetAllOrdered(ctx context.Context) ([]model.Post, error) {
	data, _, err := r.client.GetClient().From("posts").
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("投稿データの取得失敗: %w", err)
	}

	var rows []postRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("投稿データのJSONアンマーシャル失敗: %w", err)
	}

	now := time.Now()
	posts := make([]model.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, rowToPost(&row, now))
	}
	return posts, nil
}

// Insert 投稿を新規作成する（一時IDは永続化せず、ストア側の採番に任せる）
func (r *SupabasePostsRepository) Insert(ctx context.Context, post *model.Post) error {
	row := postToInsertRow(post)

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("投稿データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("posts").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("投稿データの作成失敗: %w", err)
	}
	return nil
}

// UpdateStatusByID 指定IDの投稿の受付状態のみを更新する
func (r *SupabasePostsRepository) UpdateStatusByID(ctx context.Context, id string, status model.PostStatus) error {
	patch, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return fmt.Errorf("更新データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("posts").Update(string(patch), "", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("投稿状態の更新失敗: %w", err)
	}
	return nil
}

// rowToPost ストアの行を表示用モデルに変換する。
// 表示用の相対時刻はcreated_atから読み取り時に導出する
func rowToPost(row *postRow, now time.Time) model.Post {
	post := model.Post{
		ID:          row.ID,
		Category:    model.Category(row.Category),
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		Timestamp:   helper.FormatRelativeTimestamp(row.CreatedAt, now),
		Urgent:      row.Urgent,
		Verified:    row.IsVerified,
		Status:      model.PostStatus(row.Status),
	}
	if post.Status == "" {
		post.Status = model.StatusOpen
	}
	if row.Lat != nil && row.Lng != nil {
		post.Coordinates = &model.LatLng{Lat: *row.Lat, Lng: *row.Lng}
	}
	if row.Contact != nil {
		post.Contact = *row.Contact
	}
	return post
}

// postToInsertRow モデルを挿入用の行に変換する
func postToInsertRow(post *model.Post) *postInsertRow {
	row := &postInsertRow{
		Category:    string(post.Category),
		Title:       post.Title,
		Description: post.Description,
		Location:    post.Location,
		Urgent:      post.Urgent,
		IsVerified:  post.Verified,
		Status:      string(post.Status),
	}
	if post.Coordinates != nil {
		row.Lat = &post.Coordinates.Lat
		row.Lng = &post.Coordinates.Lng
	}
	if post.Contact != "" {
		row.Contact = &post.Contact
	}
	return row
}
