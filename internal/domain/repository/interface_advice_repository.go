package repository

import "context"

// AdviceRepository は防災アドバイス生成の責務を持つリポジトリインターフェース
type AdviceRepository interface {
	// GetSafetyAdvice 自由記述の質問に対する短い安全アドバイスを生成する。
	// 失敗時は固定のフォールバック文言を返し、エラーは呼び出し元に伝播させない
	GetSafetyAdvice(ctx context.Context, query string) string
}
