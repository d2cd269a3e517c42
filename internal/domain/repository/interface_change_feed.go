package repository

import "context"

// ChangeFeed はRecord Storeの変更通知購読の責務を持つインターフェース。
// どの行が変わったかは通知せず、「何かが変わった」事実のみをハンドラーに伝える。
type ChangeFeed interface {
	// Subscribe 変更通知の購読を開始する。insert/update/deleteのいずれかが
	// 発生するたびにhandlerが呼ばれる
	Subscribe(ctx context.Context, handler func()) error

	// Close 購読を解除しリソースを解放する
	Close() error
}
