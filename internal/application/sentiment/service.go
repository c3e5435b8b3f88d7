package sentiment

import (
	"context"
	"log"

	"stock-insight/internal/domain/news"
)

const (
	defaultNewsLimit  = 5
	maxSuggestions    = 2
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Analysis 為情緒分析結果，JSON 結構與前端約定一致。
type Analysis struct {
	Sentiment   string   `json:"sentiment"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// Analyzer 為生成式模型的最小需求；實作見 infrastructure/external/gemini。
type Analyzer interface {
	Analyze(ctx context.Context, company string, items []news.Item) (Analysis, error)
}

// Service 包裝模型呼叫：限制輸入新聞則數、約束輸出形狀，
// 任何失敗都退回中性結果而非把錯誤往上拋。
type Service struct {
	analyzer  Analyzer
	newsLimit int
}

// NewService 建立情緒分析服務；limit <= 0 時取預設 5 則。
func NewService(analyzer Analyzer, newsLimit int) *Service {
	if newsLimit <= 0 {
		newsLimit = defaultNewsLimit
	}
	return &Service{analyzer: analyzer, newsLimit: newsLimit}
}

// Analyze 對公司新聞做情緒分析，永遠回傳形狀完整的結果。
func (s *Service) Analyze(ctx context.Context, company string, items []news.Item) Analysis {
	if s.analyzer == nil {
		return neutralFallback("AI 分析未啟用")
	}
	if len(items) > s.newsLimit {
		items = items[:s.newsLimit]
	}

	result, err := s.analyzer.Analyze(ctx, company, items)
	if err != nil {
		log.Printf("warning: sentiment analysis failed company=%s: %v", company, err)
		return neutralFallback("AI 分析暫時無法使用")
	}
	return clamp(result)
}

// clamp 把模型輸出收斂到約定形狀：非法情緒值歸為 neutral、建議最多兩則。
func clamp(a Analysis) Analysis {
	switch a.Sentiment {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		// ok
	default:
		a.Sentiment = SentimentNeutral
	}
	if a.Summary == "" {
		a.Summary = "無分析摘要"
	}
	if len(a.Suggestions) > maxSuggestions {
		a.Suggestions = a.Suggestions[:maxSuggestions]
	}
	return a
}

func neutralFallback(summary string) Analysis {
	return Analysis{
		Sentiment:   SentimentNeutral,
		Summary:     summary,
		Suggestions: []string{"請稍後重試"},
	}
}
