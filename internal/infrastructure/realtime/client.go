package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// heartbeatInterval Phoenixチャンネルのハートビート送信間隔
	heartbeatInterval = 30 * time.Second

	// dialTimeout websocket接続のタイムアウト
	dialTimeout = 10 * time.Second
)

// phoenixMessage Supabase Realtime（Phoenixチャンネル）のワイヤーフォーマット
type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

// Client Supabase Realtimeへのwebsocket接続を使った変更フィードクライアント。
// postsテーブルに対するinsert/update/deleteのいずれかを検知するたびに
// ハンドラーを呼ぶ。どの行が変わったかは通知しない
type Client struct {
	conn    *websocket.Conn
	table   string
	closeMu sync.Mutex
	closed  bool
	done    chan struct{}
}

// NewClient 環境変数からRealtimeクライアントを作成し、websocket接続を確立する
func NewClient(table string) (*Client, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL環境変数が設定されていません")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY環境変数が設定されていません")
	}

	// https://xxx.supabase.co -> wss://xxx.supabase.co/realtime/v1/websocket
	host := strings.TrimPrefix(supabaseURL, "https://")
	wsURL := fmt.Sprintf("wss://%s/realtime/v1/websocket?apikey=%s&vsn=1.0.0", host, supabaseAnonKey)

	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("Realtime websocket接続に失敗: %w", err)
	}

	return &Client{
		conn:  conn,
		table: table,
		done:  make(chan struct{}),
	}, nil
}

// Subscribe テーブルの変更トピックにjoinし、変更イベントごとにhandlerを呼ぶ。
// 読み取りループとハートビートはバックグラウンドで動き、Closeで停止する
func (c *Client) Subscribe(ctx context.Context, handler func()) error {
	topic := fmt.Sprintf("realtime:public:%s", c.table)

	join := phoenixMessage{
		Topic:   topic,
		Event:   "phx_join",
		Payload: json.RawMessage(`{}`),
		Ref:     "1",
	}
	if err := c.conn.WriteJSON(join); err != nil {
		return fmt.Errorf("変更フィードのトピック購読に失敗: %w", err)
	}

	go c.heartbeatLoop()
	go c.readLoop(ctx, topic, handler)

	log.Printf("📡 変更フィードの購読を開始: %s", topic)
	return nil
}

// heartbeatLoop 接続維持のためのハートビートを定期送信する
func (c *Client) heartbeatLoop() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ref := 2
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			heartbeat := phoenixMessage{
				Topic:   "phoenix",
				Event:   "heartbeat",
				Payload: json.RawMessage(`{}`),
				Ref:     fmt.Sprintf("%d", ref),
			}
			ref++
			c.closeMu.Lock()
			closed := c.closed
			c.closeMu.Unlock()
			if closed {
				return
			}
			if err := c.conn.WriteJSON(heartbeat); err != nil {
				log.Printf("⚠️ ハートビート送信に失敗: %v", err)
				return
			}
		}
	}
}

// readLoop 変更イベントを受信してハンドラーを呼ぶ。
// 接続断で終了し、再接続は行わない
func (c *Client) readLoop(ctx context.Context, topic string, handler func()) {
	for {
		var msg phoenixMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			c.closeMu.Lock()
			closed := c.closed
			c.closeMu.Unlock()
			if !closed {
				log.Printf("⚠️ 変更フィードの読み取りが終了: %v", err)
			}
			return
		}

		if msg.Topic != topic {
			continue
		}

		switch msg.Event {
		case "INSERT", "UPDATE", "DELETE":
			select {
			case <-ctx.Done():
				return
			default:
			}
			handler()
		case "phx_reply", "phx_error":
			// join応答とエラー応答は無視（購読確立失敗のリトライは行わない）
		}
	}
}

// Close 購読を解除してwebsocket接続を閉じる
func (c *Client) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	return c.conn.Close()
}
