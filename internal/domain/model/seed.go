package model

// SeedPosts 初回フェッチ失敗時や開発環境で使用する初期データ。
// 本番ではRecord Storeの内容で全置換される。
var SeedPosts = []Post{
	{
		ID:          "1",
		Category:    CategoryGovernment,
		Title:       "臨時庇護中心已開放",
		Description: "大窩邨社區中心現已開放予受火災影響嘅居民暫避。現場提供食水同毛氈。",
		Location:    "大窩鄰里社區中心",
		Timestamp:   "10 分鐘前",
		Coordinates: &LatLng{Lat: 22.4515, Lng: 114.1698},
		Urgent:      true,
		Verified:    true,
		Status:      StatusOpen,
	},
	{
		ID:          "2",
		Category:    CategoryHelpRequest,
		Title:       "急需輪椅協助",
		Description: "B座14樓有長者需要落樓，𨋢壞咗行唔到樓梯，急需人手幫忙。",
		Location:    "B座 14樓 1405室",
		Timestamp:   "25 分鐘前",
		Coordinates: &LatLng{Lat: 22.4508, Lng: 114.1712},
		Urgent:      true,
		Contact:     "9123-4567",
		Status:      StatusOpen,
	},
	{
		ID:          "3",
		Category:    CategorySupplies,
		Title:       "派發 N95 口罩",
		Description: "我有 5 盒 N95 口罩畀受濃煙影響嘅街坊，可以嚟大堂免費攞。",
		Location:    "康福苑大堂入口",
		Timestamp:   "45 分鐘前",
		Coordinates: &LatLng{Lat: 22.4502, Lng: 114.1720},
		Contact:     "6789-0123",
		Status:      StatusOpen,
	},
	{
		ID:          "4",
		Category:    CategoryVolunteer,
		Title:       "結構工程師義工",
		Description: "註冊結構工程師，可協助評估低層單位結構安全，有需要請聯絡。",
		Location:    "現場",
		Timestamp:   "1 小時前",
		Verified:    true,
		Status:      StatusOpen,
	},
	{
		ID:          "5",
		Category:    CategoryMedical,
		Title:       "臨時急救站",
		Description: "紅十字會已喺籃球場附近設立臨時急救站，處理輕傷同吸入濃煙不適。",
		Location:    "籃球場",
		Timestamp:   "2 小時前",
		Coordinates: &LatLng{Lat: 22.4521, Lng: 114.1705},
		Verified:    true,
		Status:      StatusOpen,
	},
	{
		ID:          "6",
		Category:    CategorySocialWorker,
		Title:       "社工情緒支援服務",
		Description: "社會福利署社工駐場，為受影響居民提供情緒支援同跟進服務。",
		Location:    "社區中心二樓",
		Timestamp:   "2 小時前",
		Contact:     "2343-2255",
		Verified:    true,
		Status:      StatusOpen,
	},
	{
		ID:          "7",
		Category:    CategoryHousing,
		Title:       "臨時住宿單位登記",
		Description: "房屋署開放臨時住宿單位登記，受影響住戶請帶同身份證明文件到場辦理。",
		Location:    "大埔政府合署",
		Timestamp:   "3 小時前",
		Verified:    true,
		Status:      StatusOpen,
	},
	{
		ID:          "8",
		Category:    CategoryBusiness,
		Title:       "茶餐廳免費派飯",
		Description: "本店今晚免費提供飯盒畀受影響街坊同救援人員，派完即止。",
		Location:    "大埔墟茶餐廳",
		Timestamp:   "3 小時前",
		Coordinates: &LatLng{Lat: 22.4495, Lng: 114.1688},
		Contact:     "2654-8888",
		Status:      StatusOpen,
	},
	{
		ID:          "9",
		Category:    CategoryGovernment,
		Title:       "部分道路臨時封閉",
		Description: "因應救援行動，汀角路部分路段臨時封閉，請改用其他路線。",
		Location:    "汀角路",
		Timestamp:   "4 小時前",
		Verified:    true,
		Status:      StatusClosed,
	},
	{
		ID:          "10",
		Category:    CategoryOrganization,
		Title:       "關注組物資轉運站",
		Description: "大埔社區關注組喺停車場設立物資轉運站，統籌各界捐贈物資分發。",
		Location:    "露天停車場",
		Timestamp:   "5 小時前",
		Coordinates: &LatLng{Lat: 22.4490, Lng: 114.1725},
		Status:      StatusOpen,
	},
}
