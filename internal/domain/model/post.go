package model

import "github.com/paulmach/orb"

// LatLng 緯度経度を表す基本的な型（マップマーカーなどで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ToPoint orbのPoint型（[lng, lat]順）に変換
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Category 投稿の分類を表す型
type Category string

const (
	CategoryGovernment   Category = "government"    // 政府資訊
	CategoryBusiness     Category = "business"      // 商鋪資訊
	CategoryOrganization Category = "organization"  // 組織資訊
	CategorySocialWorker Category = "social_worker" // 社工支援
	CategoryHousing      Category = "housing"       // 安置 / 房屋
	CategoryVolunteer    Category = "volunteer"     // 義工
	CategorySupplies     Category = "supplies"      // 物資
	CategoryHelpRequest  Category = "help_request"  // 求助
	CategoryMedical      Category = "medical"       // 醫療
)

// PostStatus 投稿の受付状態
type PostStatus string

const (
	StatusOpen   PostStatus = "open"
	StatusClosed PostStatus = "closed"
)

// PageType トップレベルの閲覧コンテキスト（資訊台 / 互助區）
type PageType string

const (
	PageInfo PageType = "info"
	PageAid  PageType = "aid"
)

// TabType ページ内のカテゴリフィルタ。TabAllは絞り込みなしを表す
type TabType string

const TabAll TabType = "all"

// Post 掲示板の投稿1件を表すモデル
type Post struct {
	ID          string     `json:"id"`                    // ユニークな投稿ID（楽観的挿入時は一時ID）
	Category    Category   `json:"category"`              // 分類
	Title       string     `json:"title"`                 // タイトル
	Description string     `json:"description"`           // 本文
	Location    string     `json:"location"`              // 場所（自由記述）
	Timestamp   string     `json:"timestamp"`             // 表示用の相対時刻（created_atから読み取り時に導出）
	Coordinates *LatLng    `json:"coordinates,omitempty"` // 位置座標（NULLABLE）
	Urgent      bool       `json:"urgent"`                // 緊急フラグ（表示のみに影響、並び順には影響しない）
	Verified    bool       `json:"verified"`              // 認証済みフラグ（管理者のみ設定可能）
	Contact     string     `json:"contact,omitempty"`     // 連絡先電話番号（NULLABLE）
	Status      PostStatus `json:"status"`                // 受付状態（デフォルトopen）
	Unsynced    bool       `json:"unsynced,omitempty"`    // 永続化失敗した楽観的変更を示すローカル専用フラグ
}

// IsOpen 投稿が受付中かどうか
func (p *Post) IsOpen() bool {
	return p.Status != StatusClosed
}

// HasCoordinates 位置座標が設定されているかチェック
func (p *Post) HasCoordinates() bool {
	return p.Coordinates != nil
}

// HasContact 連絡先が設定されているかチェック（通話アクションの表示判定に使用）
func (p *Post) HasContact() bool {
	return p.Contact != ""
}

// ToggledStatus open⇔closedを反転した値を返す
func (p *Post) ToggledStatus() PostStatus {
	if p.IsOpen() {
		return StatusClosed
	}
	return StatusOpen
}

// EmergencyContact 緊急連絡先を表すモデル
type EmergencyContact struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description,omitempty"`
}

// CreatePostRequest 投稿作成リクエスト
type CreatePostRequest struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact,omitempty"`
	Coordinates *LatLng  `json:"coordinates,omitempty"`
}

// AdviceRequest 防災アシスタントへの質問リクエスト
type AdviceRequest struct {
	Query string `json:"query"`
}

// AdviceResponse 防災アシスタントの回答
type AdviceResponse struct {
	Advice string `json:"advice"`
}
