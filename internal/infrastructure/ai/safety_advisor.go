package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"AidBoard-App/internal/domain/model"
	"AidBoard-App/internal/domain/repository"
)

// ContentGenerator プロンプトからテキストを生成するインターフェース（テスト時に差し替え可能）
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SafetyAdvisor 火災現場向けの安全アドバイスを生成するAdviceRepositoryの実装。
// ベストエフォートのオラクルとして扱い、失敗は固定フォールバック文言に吸収する
type SafetyAdvisor struct {
	generator ContentGenerator
}

// NewSafetyAdvisor 新しいSafetyAdvisorインスタンスを作成
func NewSafetyAdvisor(generator ContentGenerator) repository.AdviceRepository {
	return &SafetyAdvisor{
		generator: generator,
	}
}

// GetSafetyAdvice 質問に対する短い安全アドバイスを返す。
// 生成失敗・空応答のいずれの場合もエラーは返さず、フォールバック文言を返す
func (a *SafetyAdvisor) GetSafetyAdvice(ctx context.Context, query string) string {
	prompt := buildAdvicePrompt(query)

	advice, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ アドバイス生成に失敗、フォールバック使用: %v", err)
		return model.AdviceFallbackMessage
	}

	advice = strings.TrimSpace(advice)
	if advice == "" {
		return model.AdviceFallbackMessage
	}
	return advice
}

// buildAdvicePrompt 香港（大埔）の火災を前提としたプロンプトを構築する
func buildAdvicePrompt(query string) string {
	return fmt.Sprintf(`You are an emergency response assistant for a fire incident in Hong Kong (Tai Po).
Provide a concise, calm, and actionable safety tip or answer regarding: "%s".
Respond in Traditional Chinese (Cantonese context).
Keep it under 60 words. Focus on immediate safety or resource finding.
If the query is irrelevant to safety/disaster, politely deflect in Cantonese.`, query)
}
