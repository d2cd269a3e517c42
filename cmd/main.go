package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"AidBoard-App/internal/domain/repository"
	"AidBoard-App/internal/domain/service"
	"AidBoard-App/internal/handler"
	"AidBoard-App/internal/infrastructure/ai"
	"AidBoard-App/internal/infrastructure/database"
	"AidBoard-App/internal/infrastructure/firestore"
	"AidBoard-App/internal/infrastructure/realtime"
	repoimpl "AidBoard-App/internal/repository"
	"AidBoard-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// ストアバックエンドの選択（デフォルトはSupabase）
	var (
		postsRepo  repository.PostsRepository
		changeFeed repository.ChangeFeed
	)

	switch os.Getenv("STORE_BACKEND") {
	case "firestore":
		projectID := os.Getenv("FIRESTORE_PROJECT_ID")
		if projectID == "" {
			log.Fatal("FIRESTORE_PROJECT_ID環境変数が設定されていません")
		}
		fmt.Println("Initializing Firestore client...")
		fsClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer fsClient.Close()
		postsRepo = repoimpl.NewFirestorePostsRepository(fsClient)
		changeFeed = repoimpl.NewFirestoreChangeFeed(fsClient)

	default:
		fmt.Println("Initializing Supabase client...")
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
		}

		fmt.Println("Performing Supabase health check...")
		if err := supabaseClient.HealthCheck(); err != nil {
			log.Fatalf("Supabaseヘルスチェック失敗: %v", err)
		}
		fmt.Println("✅ Supabase connection successful!")

		postsRepo = repoimpl.NewSupabasePostsRepository(supabaseClient)

		// 変更フィードの確立失敗は致命傷にしない（リアルタイム同期なしで劣化運転）
		rtClient, err := realtime.NewClient("posts")
		if err != nil {
			log.Printf("⚠️ Realtime接続に失敗、リアルタイム同期なしで起動: %v", err)
		} else {
			changeFeed = rtClient
		}
	}

	// ビュー導出・マーカー導出サービス
	viewSvc := service.NewViewService()
	markerSvc := service.NewMarkerService()

	// 掲示板ユースケース（ローカルキャッシュの所有者）
	board := usecase.NewBoardUseCase(postsRepo, changeFeed, viewSvc, markerSvc)
	if err := board.Start(ctx); err != nil {
		log.Fatalf("掲示板の初期化失敗: %v", err)
	}
	defer board.Close()

	// 防災アシスタント（失敗時は固定フォールバック文言）
	geminiClient := ai.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	advisor := ai.NewSafetyAdvisor(geminiClient)

	// ルーターの設定
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "AidBoard-App"})
	})

	boardHandler := handler.NewBoardHandler(board)
	r.GET("/posts", boardHandler.GetPosts)
	r.POST("/posts", boardHandler.CreatePost)
	r.PATCH("/posts/:id/status", boardHandler.ToggleStatus)
	r.GET("/map/markers", boardHandler.GetMarkers)
	r.GET("/contacts", boardHandler.GetContacts)

	assistantHandler := handler.NewAssistantHandler(advisor)
	r.POST("/assistant/advice", assistantHandler.GetAdvice)

	// 管理者ルート（PostgreSQL直接接続が使える場合のみ有効化）
	if pgClient, err := database.NewPostgreSQLClient(); err != nil {
		log.Printf("⚠️ PostgreSQL接続に失敗、管理者APIは無効: %v", err)
	} else {
		defer pgClient.Close()
		adminUseCase := usecase.NewAdminUseCase(repoimpl.NewPostgresAdminRepository(pgClient))
		adminHandler := handler.NewAdminHandler(adminUseCase)

		admin := r.Group("/admin", handler.AdminAuthMiddleware(os.Getenv("ADMIN_API_TOKEN")))
		admin.GET("/posts", adminHandler.ListPosts)
		admin.PUT("/posts/:id/verify", adminHandler.ToggleVerified)
		admin.PUT("/posts/:id/status", adminHandler.ForceStatus)
		admin.DELETE("/posts/:id", adminHandler.DeletePost)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		fmt.Printf("AidBoard-App server starting on :%s...\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("サーバー起動失敗: %v", err)
		}
	}()

	// 終了シグナルで変更フィードを解放してから停止する
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down AidBoard-App server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ サーバー停止に失敗: %v", err)
	}
}
