package model

// CategoryLabelMap カテゴリIDから繁体字表示名へのマッピング
var CategoryLabelMap = map[Category]string{
	CategoryGovernment:   "政府資訊",
	CategoryBusiness:     "商鋪資訊",
	CategoryOrganization: "組織資訊",
	CategorySocialWorker: "社工支援",
	CategoryHousing:      "安置 / 房屋",
	CategoryVolunteer:    "義工招募",
	CategorySupplies:     "物資供應",
	CategoryHelpRequest:  "求助",
	CategoryMedical:      "醫療支援",
}

// GetCategoryLabel カテゴリIDから表示名を取得する
func GetCategoryLabel(category Category) string {
	if label, ok := CategoryLabelMap[category]; ok {
		return label
	}
	return string(category) // デフォルトはそのまま返す
}

// PageCategoryMap ページごとの許可カテゴリ（静的な構成。各カテゴリは必ずどちらか一方のページに属する）
var PageCategoryMap = map[PageType][]Category{
	PageInfo: {
		CategoryGovernment,
		CategoryBusiness,
		CategoryOrganization,
		CategorySocialWorker,
		CategoryHousing,
		CategoryMedical,
	},
	PageAid: {
		CategoryHelpRequest,
		CategoryVolunteer,
		CategorySupplies,
	},
}

// PageOf カテゴリが属するページを取得する
func PageOf(category Category) PageType {
	for _, c := range PageCategoryMap[PageAid] {
		if c == category {
			return PageAid
		}
	}
	return PageInfo
}

// IsCategoryInPage カテゴリが指定ページに属するかチェック
func IsCategoryInPage(category Category, page PageType) bool {
	for _, c := range PageCategoryMap[page] {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidCategory 既知のカテゴリかチェック
func IsValidCategory(category Category) bool {
	_, ok := CategoryLabelMap[category]
	return ok
}

// UrgentCategories 作成時に自動で緊急フラグが立つカテゴリ
var UrgentCategories = []Category{
	CategoryHelpRequest,
	CategoryMedical,
}

// IsUrgentCategory 自動緊急判定の対象カテゴリかチェック
func IsUrgentCategory(category Category) bool {
	for _, c := range UrgentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// マーカー色の定数（カテゴリ・緊急度に応じた色分け）
const (
	MarkerColorUrgent   = "#EF4444" // 赤（求助・危機）
	MarkerColorResource = "#10B981" // 緑（物資・資源）
	MarkerColorInfo     = "#3B82F6" // 青（官方・資訊）
	MarkerColorDefault  = "#6B7280" // 灰（その他）
)

// 地図の初期表示設定（大埔の火災現場周辺を中心とする）
const (
	MapDefaultLat  = 22.4510
	MapDefaultLng  = 114.1710
	MapDefaultZoom = 16
)

// AdviceFallbackMessage アドバイスサービスが失敗した際の固定フォールバック文言
const AdviceFallbackMessage = "服務暫停，緊急情況請致電 999。"

// EmergencyContacts 緊急連絡先の一覧
var EmergencyContacts = []EmergencyContact{
	{Name: "消防處", Number: "999"},
	{Name: "大埔民政處", Number: "2654 1262"},
	{Name: "社會福利署", Number: "2343 2255"},
}
