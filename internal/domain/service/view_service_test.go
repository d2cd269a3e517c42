package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"AidBoard-App/internal/domain/model"
)

// seedCache テスト用に初期データのコピーを返す
func seedCache() []model.Post {
	cache := make([]model.Post, len(model.SeedPosts))
	copy(cache, model.SeedPosts)
	return cache
}

func TestDeriveVisible_PageFilter(t *testing.T) {
	svc := NewViewService()
	cache := seedCache()

	t.Run("互助區はhelp_request・volunteer・suppliesのみ", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "")

		categories := map[model.Category]int{}
		for _, post := range result {
			categories[post.Category]++
		}
		assert.Equal(t, 3, len(result))
		assert.Equal(t, 1, categories[model.CategoryHelpRequest])
		assert.Equal(t, 1, categories[model.CategoryVolunteer])
		assert.Equal(t, 1, categories[model.CategorySupplies])
	})

	t.Run("ページフィルタは許可カテゴリの部分集合", func(t *testing.T) {
		for _, page := range []model.PageType{model.PageInfo, model.PageAid} {
			result := svc.DeriveVisible(cache, page, model.TabAll, "")
			for _, post := range result {
				assert.True(t, model.IsCategoryInPage(post.Category, page),
					"ページ %s に不正なカテゴリ %s が含まれている", page, post.Category)
			}
		}
	})

	t.Run("タブ・検索なしなら許可カテゴリ全件と一致", func(t *testing.T) {
		infoResult := svc.DeriveVisible(cache, model.PageInfo, model.TabAll, "")
		aidResult := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "")
		assert.Equal(t, len(cache), len(infoResult)+len(aidResult))
	})
}

func TestDeriveVisible_TabFilter(t *testing.T) {
	svc := NewViewService()
	cache := seedCache()

	t.Run("タブ指定で単一カテゴリに絞り込み", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabType(model.CategorySupplies), "")
		assert.Equal(t, 1, len(result))
		assert.Equal(t, model.CategorySupplies, result[0].Category)
	})

	t.Run("allタブは絞り込みなし", func(t *testing.T) {
		all := svc.DeriveVisible(cache, model.PageInfo, model.TabAll, "")
		assert.NotEmpty(t, all)
	})
}

func TestDeriveVisible_SearchFilter(t *testing.T) {
	svc := NewViewService()

	cache := []model.Post{
		{ID: "a", Category: model.CategorySupplies, Title: "派發口罩", Description: "免費派發", Location: "大堂", Status: model.StatusOpen},
		{ID: "b", Category: model.CategorySupplies, Title: "物資提供", Description: "毛氈同乾糧", Location: "飲用水補給站", Status: model.StatusOpen},
		{ID: "c", Category: model.CategorySupplies, Title: "N95 Mask Supply", Description: "five boxes", Location: "Block A Lobby", Status: model.StatusOpen},
	}

	t.Run("場所のみに一致する検索語でもヒットする", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "水")
		assert.Equal(t, 1, len(result))
		assert.Equal(t, "b", result[0].ID)
	})

	t.Run("大文字小文字を区別しない", func(t *testing.T) {
		lower := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "n95")
		upper := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "N95")
		assert.Equal(t, 1, len(lower))
		assert.Equal(t, lower, upper)

		byLocation := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "block a")
		assert.Equal(t, 1, len(byLocation))
		assert.Equal(t, "c", byLocation[0].ID)
	})

	t.Run("一致なしの検索は空の結果を返す", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "xyz-no-match")
		assert.Empty(t, result)
	})

	t.Run("空の検索語は絞り込みなし", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "")
		assert.Equal(t, 3, len(result))
	})
}

func TestDeriveVisible_SortOpenFirst(t *testing.T) {
	svc := NewViewService()

	cache := []model.Post{
		{ID: "1", Category: model.CategorySupplies, Title: "一", Status: model.StatusClosed},
		{ID: "2", Category: model.CategoryHelpRequest, Title: "二", Status: model.StatusOpen, Urgent: true},
		{ID: "3", Category: model.CategoryVolunteer, Title: "三", Status: model.StatusClosed},
		{ID: "4", Category: model.CategorySupplies, Title: "四", Status: model.StatusOpen},
	}

	t.Run("openがclosedより前", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "")

		seenClosed := false
		for _, post := range result {
			if post.Status == model.StatusClosed {
				seenClosed = true
			} else {
				assert.False(t, seenClosed, "closedの後にopenが現れた (id=%s)", post.ID)
			}
		}
	})

	t.Run("各グループ内は入力順を保持する安定ソート", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "")

		ids := make([]string, len(result))
		for i, post := range result {
			ids[i] = post.ID
		}
		assert.Equal(t, []string{"2", "4", "1", "3"}, ids)
	})

	t.Run("緊急フラグは並び順に影響しない", func(t *testing.T) {
		result := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "")
		// 緊急のID2が先頭なのは入力順がそうだからであり、非緊急のID4も同グループ内で続く
		assert.Equal(t, "2", result[0].ID)
		assert.Equal(t, "4", result[1].ID)
	})
}

func TestDeriveVisible_Purity(t *testing.T) {
	svc := NewViewService()
	cache := seedCache()

	t.Run("同じ入力で2回呼ぶと要素単位で同一の結果", func(t *testing.T) {
		first := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "物資")
		second := svc.DeriveVisible(cache, model.PageAid, model.TabAll, "物資")
		assert.Equal(t, first, second)
	})

	t.Run("結果を書き換えても入力キャッシュは変化しない", func(t *testing.T) {
		before := seedCache()
		result := svc.DeriveVisible(cache, model.PageInfo, model.TabAll, "")
		if assert.NotEmpty(t, result) {
			result[0].Title = "changed"
		}
		assert.Equal(t, before, cache)
	})
}

func TestTabsForPage(t *testing.T) {
	svc := NewViewService()

	t.Run("先頭は常にall", func(t *testing.T) {
		for _, page := range []model.PageType{model.PageInfo, model.PageAid} {
			tabs := svc.TabsForPage(page)
			assert.Equal(t, model.TabAll, tabs[0])
		}
	})

	t.Run("互助區のタブはページのカテゴリと一致", func(t *testing.T) {
		tabs := svc.TabsForPage(model.PageAid)
		assert.Equal(t, []model.TabType{
			model.TabAll,
			model.TabType(model.CategoryHelpRequest),
			model.TabType(model.CategoryVolunteer),
			model.TabType(model.CategorySupplies),
		}, tabs)
	})
}
