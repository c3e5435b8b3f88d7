package newsfeed

import (
	"log"
	"sort"

	"stock-insight/internal/domain/news"
)

// Service 串起整條解析流程：identity 解析 → 語料比對 → 正規化 → 必要時合成。
type Service struct {
	resolver    CompanyResolver
	matcher     *Matcher
	normalizer  *Normalizer
	synthesizer *Synthesizer
}

// CompanyResolver 將原始輸入解析為正式名稱。
type CompanyResolver interface {
	Resolve(rawToken string) string
}

// NewService 建立新聞解析服務。
func NewService(resolver CompanyResolver, matcher *Matcher, normalizer *Normalizer, synthesizer *Synthesizer) *Service {
	return &Service{
		resolver:    resolver,
		matcher:     matcher,
		normalizer:  normalizer,
		synthesizer: synthesizer,
	}
}

// Result 為單次解析的輸出。
type Result struct {
	CanonicalName string
	Items         []news.Item
	Synthesized   bool
}

// NewsFor 對輸入的公司字串執行完整解析，保證回傳非空結果。
// 輸出依日期遞減排序；同日期維持語料原始相對順序（stable sort）。
func (s *Service) NewsFor(rawToken string, corpus []news.RawRecord) Result {
	canonical := s.resolver.Resolve(rawToken)

	matched := s.matcher.Match(rawToken, canonical, corpus)
	items := make([]news.Item, 0, len(matched))
	for _, rec := range matched {
		items = append(items, s.normalizer.Normalize(rec, canonical))
	}

	if len(items) == 0 {
		log.Printf("news match empty token=%s canonical=%s corpus=%d, synthesizing", rawToken, canonical, len(corpus))
		return Result{
			CanonicalName: canonical,
			Items:         s.synthesizer.Synthesize(canonical),
			Synthesized:   true,
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	log.Printf("news match done token=%s canonical=%s matched=%d", rawToken, canonical, len(items))
	return Result{CanonicalName: canonical, Items: items}
}
