package helper

import (
	"fmt"
	"time"
)

// JustNowLabel 作成直後の投稿に使う表示用文言
const JustNowLabel = "剛剛"

// FormatRelativeTimestamp created_atから表示用の相対時刻文字列を導出する。
// 投稿には絶対時刻を独立して保持させず、読み取り時に毎回導出する
func FormatRelativeTimestamp(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)

	switch {
	case elapsed < time.Minute:
		return JustNowLabel
	case elapsed < time.Hour:
		return fmt.Sprintf("%d 分鐘前", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d 小時前", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d 日前", int(elapsed.Hours()/24))
	}
}
