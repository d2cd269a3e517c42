package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"AidBoard-App/internal/domain/helper"
	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
	fsinfra "AidBoard-App/internal/infrastructure/firestore"
)

// postDoc Firestoreのpostsコレクションのドキュメント
type postDoc struct {
	Category    string    `firestore:"category"`
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	Location    string    `firestore:"location"`
	Lat         float64   `firestore:"lat"`
	Lng         float64   `firestore:"lng"`
	HasCoords   bool      `firestore:"has_coords"`
	Urgent      bool      `firestore:"urgent"`
	IsVerified  bool      `firestore:"is_verified"`
	Contact     string    `firestore:"contact"`
	Status      string    `firestore:"status"`
	CreatedAt   time.Time `firestore:"created_at,serverTimestamp"`
}

// FirestorePostsRepository Firestoreを使用した投稿リポジトリ（代替ストアバックエンド）。
// スナップショットリスナーがネイティブの変更フィードとして機能する
type FirestorePostsRepository struct {
	client *fsinfra.FirestoreClient
}

// NewFirestorePostsRepository 新しいFirestorePostsRepositoryインスタンスを作成
func NewFirestorePostsRepository(client *fsinfra.FirestoreClient) repository.PostsRepository {
	return &FirestorePostsRepository{
		client: client,
	}
}

// GetAllOrdered 全投稿をcreated_at降順で取得する
func (r *FirestorePostsRepository) GetAllOrdered(ctx context.Context) ([]model.Post, error) {
	iter := r.client.GetClient().Collection("posts").
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	now := time.Now()
	var posts []model.Post
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("投稿データの取得失敗: %w", err)
		}

		var data postDoc
		if err := doc.DataTo(&data); err != nil {
			return nil, fmt.Errorf("投稿ドキュメントの変換失敗: %w", err)
		}
		posts = append(posts, docToPost(doc.Ref.ID, &data, now))
	}
	return posts, nil
}

// Insert 投稿を新規作成する（ドキュメントIDとcreated_atはFirestore側で採番される）
func (r *FirestorePostsRepository) Insert(ctx context.Context, post *model.Post) error {
	doc := postToDoc(post)
	_, _, err := r.client.GetClient().Collection("posts").Add(ctx, doc)
	if err != nil {
		return fmt.Errorf("投稿データの作成失敗: %w", err)
	}
	return nil
}

// UpdateStatusByID 指定IDの投稿の受付状態のみを更新する
func (r *FirestorePostsRepository) UpdateStatusByID(ctx context.Context, id string, status model.PostStatus) error {
	_, err := r.client.GetClient().Collection("posts").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
	})
	if err != nil {
		return fmt.Errorf("投稿状態の更新失敗: %w", err)
	}
	return nil
}

// docToPost Firestoreドキュメントを表示用モデルに変換する
func docToPost(id string, doc *postDoc, now time.Time) model.Post {
	post := model.Post{
		ID:          id,
		Category:    model.Category(doc.Category),
		Title:       doc.Title,
		Description: doc.Description,
		Location:    doc.Location,
		Timestamp:   helper.FormatRelativeTimestamp(doc.CreatedAt, now),
		Urgent:      doc.Urgent,
		Verified:    doc.IsVerified,
		Contact:     doc.Contact,
		Status:      model.PostStatus(doc.Status),
	}
	if post.Status == "" {
		post.Status = model.StatusOpen
	}
	if doc.HasCoords {
		post.Coordinates = &model.LatLng{Lat: doc.Lat, Lng: doc.Lng}
	}
	return post
}

// postToDoc モデルをFirestoreドキュメントに変換する
func postToDoc(post *model.Post) *postDoc {
	doc := &postDoc{
		Category:    string(post.Category),
		Title:       post.Title,
		Description: post.Description,
		Location:    post.Location,
		Urgent:      post.Urgent,
		IsVerified:  post.Verified,
		Contact:     post.Contact,
		Status:      string(post.Status),
	}
	if post.Coordinates != nil {
		doc.Lat = post.Coordinates.Lat
		doc.Lng = post.Coordinates.Lng
		doc.HasCoords = true
	}
	return doc
}

// FirestoreChangeFeed スナップショットリスナーを使った変更フィード実装
type FirestoreChangeFeed struct {
	client *fsinfra.FirestoreClient
	cancel context.CancelFunc
}

// NewFirestoreChangeFeed 新しいFirestoreChangeFeedインスタンスを作成
func NewFirestoreChangeFeed(client *fsinfra.FirestoreClient) repository.ChangeFeed {
	return &FirestoreChangeFeed{
		client: client,
	}
}

// Subscribe postsコレクションのスナップショットを監視し、変更のたびにhandlerを呼ぶ。
// 最初のスナップショット（初期状態）は変更として扱わない
func (f *FirestoreChangeFeed) Subscribe(ctx context.Context, handler func()) error {
	watchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	snapshots := f.client.GetClient().Collection("posts").Snapshots(watchCtx)

	go func() {
		defer snapshots.Stop()
		first := true
		for {
			_, err := snapshots.Next()
			if err != nil {
				if watchCtx.Err() == nil {
					log.Printf("⚠️ 変更フィードの監視が終了: %v", err)
				}
				return
			}
			if first {
				first = false
				continue
			}
			handler()
		}
	}()

	log.Printf("📡 変更フィードの購読を開始: posts (Firestore)")
	return nil
}

// Close スナップショット監視を停止する
func (f *FirestoreChangeFeed) Close() error {
	if f.cancel != nil {
		f.cancel()
	}
	return nil
}
