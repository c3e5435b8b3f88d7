package sentiment

import (
	"context"
	"errors"
	"testing"

	"stock-insight/internal/domain/news"
)

type fakeAnalyzer struct {
	result     Analysis
	err        error
	gotItems   int
	gotCompany string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, company string, items []news.Item) (Analysis, error) {
	f.gotCompany = company
	f.gotItems = len(items)
	return f.result, f.err
}

func someItems(n int) []news.Item {
	items := make([]news.Item, n)
	for i := range items {
		items[i] = news.Item{Company: "台積電", Title: "新聞", Text: "內文", ImpactPct: 55}
	}
	return items
}

func TestAnalyze_NilAnalyzerReturnsNeutral(t *testing.T) {
	s := NewService(nil, 0)

	got := s.Analyze(context.Background(), "台積電", someItems(3))
	if got.Sentiment != SentimentNeutral {
		t.Errorf("Sentiment = %q, want neutral", got.Sentiment)
	}
	if got.Summary != "AI 分析未啟用" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.Suggestions) == 0 {
		t.Error("fallback must carry at least one suggestion")
	}
}

func TestAnalyze_AnalyzerErrorReturnsNeutral(t *testing.T) {
	s := NewService(&fakeAnalyzer{err: errors.New("quota exceeded")}, 0)

	got := s.Analyze(context.Background(), "台積電", someItems(1))
	if got.Sentiment != SentimentNeutral {
		t.Errorf("Sentiment = %q, want neutral on analyzer error", got.Sentiment)
	}
	if got.Summary != "AI 分析暫時無法使用" {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestAnalyze_CapsNewsAtLimit(t *testing.T) {
	fake := &fakeAnalyzer{result: Analysis{Sentiment: SentimentPositive, Summary: "看多", Suggestions: []string{"持有"}}}
	s := NewService(fake, 5)

	s.Analyze(context.Background(), "台積電", someItems(12))
	if fake.gotItems != 5 {
		t.Errorf("analyzer received %d items, want capped at 5", fake.gotItems)
	}
	if fake.gotCompany != "台積電" {
		t.Errorf("analyzer received company %q", fake.gotCompany)
	}
}

func TestAnalyze_ClampsModelOutput(t *testing.T) {
	tests := []struct {
		name string
		in   Analysis
		want Analysis
	}{
		{
			name: "invalid sentiment becomes neutral",
			in:   Analysis{Sentiment: "bullish", Summary: "看多", Suggestions: []string{"買進"}},
			want: Analysis{Sentiment: SentimentNeutral, Summary: "看多", Suggestions: []string{"買進"}},
		},
		{
			name: "too many suggestions are trimmed to two",
			in:   Analysis{Sentiment: SentimentNegative, Summary: "看空", Suggestions: []string{"a", "b", "c", "d"}},
			want: Analysis{Sentiment: SentimentNegative, Summary: "看空", Suggestions: []string{"a", "b"}},
		},
		{
			name: "empty summary gets placeholder",
			in:   Analysis{Sentiment: SentimentPositive, Suggestions: []string{"持有"}},
			want: Analysis{Sentiment: SentimentPositive, Summary: "無分析摘要", Suggestions: []string{"持有"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(&fakeAnalyzer{result: tt.in}, 0)
			got := s.Analyze(context.Background(), "台積電", someItems(1))
			if got.Sentiment != tt.want.Sentiment || got.Summary != tt.want.Summary {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if len(got.Suggestions) != len(tt.want.Suggestions) {
				t.Fatalf("got %d suggestions, want %d", len(got.Suggestions), len(tt.want.Suggestions))
			}
			for i := range got.Suggestions {
				if got.Suggestions[i] != tt.want.Suggestions[i] {
					t.Errorf("suggestion %d = %q, want %q", i, got.Suggestions[i], tt.want.Suggestions[i])
				}
			}
		})
	}
}
