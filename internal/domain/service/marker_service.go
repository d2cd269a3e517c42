package service

import (
	"fmt"

	"github.com/paulmach/orb"

	"AidBoard-App/internal/domain/model"
)

// Marker 地図描画ライブラリに渡すマーカー仕様
type Marker struct {
	PostID   string       `json:"post_id"`
	Position model.LatLng `json:"position"`
	Color    string       `json:"color"`
	Popup    MarkerPopup  `json:"popup"`
}

// MarkerPopup マーカーのポップアップに表示する内容
type MarkerPopup struct {
	CategoryLabel string `json:"category_label"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Timestamp     string `json:"timestamp"`
	Contact       string `json:"contact,omitempty"`
	Urgent        bool   `json:"urgent"`
}

// MapView 地図の表示領域（fit対象の境界と中心・ズーム）
type MapView struct {
	Center model.LatLng `json:"center"`
	Zoom   int          `json:"zoom"`
	Bounds *MapBounds   `json:"bounds,omitempty"`
}

// MapBounds マーカー全体を収める矩形領域
type MapBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// MarkerService は投稿から地図マーカーを導出するサービス
type MarkerService interface {
	// BuildMarkers 座標を持つopen投稿のみをマーカーに変換する
	BuildMarkers(posts []model.Post) []Marker

	// FitView マーカー全体が収まる表示領域を計算する。
	// マーカーが無い場合はデフォルトの中心・ズームのみを返す
	FitView(markers []Marker) MapView
}

type markerServiceImpl struct{}

// NewMarkerService MarkerServiceの新しいインスタンスを作成
func NewMarkerService() MarkerService {
	return &markerServiceImpl{}
}

// BuildMarkers closed投稿と座標なし投稿は地図に表示しない
func (s *markerServiceImpl) BuildMarkers(posts []model.Post) []Marker {
	markers := make([]Marker, 0, len(posts))
	for _, post := range posts {
		if !post.HasCoordinates() || !post.IsOpen() {
			continue
		}
		markers = append(markers, Marker{
			PostID:   post.ID,
			Position: *post.Coordinates,
			Color:    markerColor(post.Category, post.Urgent),
			Popup: MarkerPopup{
				CategoryLabel: model.GetCategoryLabel(post.Category),
				Title:         post.Title,
				Description:   post.Description,
				Location:      post.Location,
				Timestamp:     post.Timestamp,
				Contact:       post.Contact,
				Urgent:        post.Urgent,
			},
		})
	}
	return markers
}

// FitView orb.Boundを使ってマーカー全体の境界ボックスを計算する
func (s *markerServiceImpl) FitView(markers []Marker) MapView {
	view := MapView{
		Center: model.LatLng{Lat: model.MapDefaultLat, Lng: model.MapDefaultLng},
		Zoom:   model.MapDefaultZoom,
	}
	if len(markers) == 0 {
		return view
	}

	bound := orb.Bound{
		Min: markers[0].Position.ToPoint(),
		Max: markers[0].Position.ToPoint(),
	}
	for _, marker := range markers[1:] {
		bound = bound.Extend(marker.Position.ToPoint())
	}

	center := bound.Center()
	view.Center = model.LatLng{Lat: center.Lat(), Lng: center.Lon()}
	view.Bounds = &MapBounds{
		MinLat: bound.Min.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLng: bound.Max.Lon(),
	}
	return view
}

// markerColor カテゴリと緊急度に応じたマーカー色を決定する
func markerColor(category model.Category, urgent bool) string {
	if urgent {
		return model.MarkerColorUrgent
	}
	switch category {
	case model.CategoryHelpRequest, model.CategoryMedical:
		return model.MarkerColorUrgent
	case model.CategorySupplies, model.CategoryHousing, model.CategoryBusiness, model.CategoryVolunteer:
		return model.MarkerColorResource
	case model.CategoryGovernment:
		return model.MarkerColorInfo
	default:
		return model.MarkerColorDefault
	}
}

// PopupText ポップアップの簡易テキスト表現（ログや検証用）
func (m *Marker) PopupText() string {
	text := fmt.Sprintf("[%s] %s - %s (%s)", m.Popup.CategoryLabel, m.Popup.Title, m.Popup.Location, m.Popup.Timestamp)
	if m.Popup.Contact != "" {
		text += fmt.Sprintf(" 致電: %s", m.Popup.Contact)
	}
	return text
}
