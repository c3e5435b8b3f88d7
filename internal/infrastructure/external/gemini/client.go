package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-insight/internal/application/sentiment"
	"stock-insight/internal/domain/news"
	"stock-insight/internal/infrastructure/config"

	"google.golang.org/genai"
)

// Client 包裝 Gemini API 的情緒分析呼叫，實作 sentiment.Analyzer。
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// NewClient 建立 Gemini 客戶端。
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	return &Client{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// Analyze 送出提示詞並解析模型回覆。
// 回傳錯誤時由上層 usecase 退回中性結果，這裡不做 fallback。
func (c *Client) Analyze(ctx context.Context, company string, items []news.Item) (sentiment.Analysis, error) {
	prompt := buildPrompt(company, items)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})
	if err != nil {
		return sentiment.Analysis{}, fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return sentiment.Analysis{}, fmt.Errorf("empty response from model")
	}
	return parseAnalysis(text)
}

// extractText 取出第一個帶文字的 candidate 內容。
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}
