package newsfeed

import (
	"strings"

	"stock-insight/internal/domain/news"
)

// TickerLookup 查詢輸入字串是否為已知證券代號。
type TickerLookup interface {
	NameByTicker(ticker string) (string, bool)
}

// matchQuery 封裝單次比對所需的查詢條件。
type matchQuery struct {
	rawToken      string
	canonicalName string
	tokenIsTicker bool
}

// matchStrategy 為單一比對規則；策略依序評估，先命中者決定收錄。
type matchStrategy struct {
	name  string
	match func(company string, q matchQuery) bool
}

// strategies 的排列順序即為比對優先序（tie-break order）：
// 完全相等最可信，其次子字串，再來才是代號直接比對。
// 子字串規則對短代號可能誤收無關公司，此為沿用既有行為的已知取捨。
var strategies = []matchStrategy{
	{
		name: "exact",
		match: func(company string, q matchQuery) bool {
			return company == q.canonicalName
		},
	},
	{
		name: "substring",
		match: func(company string, q matchQuery) bool {
			return strings.Contains(company, q.rawToken) || strings.Contains(company, q.canonicalName)
		},
	},
	{
		name: "token-as-ticker",
		match: func(company string, q matchQuery) bool {
			return q.tokenIsTicker && company == q.rawToken
		},
	},
}

// Matcher 從新聞語料中挑出屬於指定公司的資料列。
type Matcher struct {
	tickers TickerLookup
}

// NewMatcher 建立 Matcher。
func NewMatcher(tickers TickerLookup) *Matcher {
	return &Matcher{tickers: tickers}
}

// Match 掃描語料並回傳命中的原始資料列，維持語料原始順序。
// company 欄位為空的資料列一律排除；命中筆數不設上限。
func (m *Matcher) Match(rawToken, canonicalName string, corpus []news.RawRecord) []news.RawRecord {
	_, tokenIsTicker := m.tickers.NameByTicker(rawToken)
	q := matchQuery{
		rawToken:      rawToken,
		canonicalName: canonicalName,
		tokenIsTicker: tokenIsTicker,
	}

	var matched []news.RawRecord
	for _, rec := range corpus {
		if rec.Company == "" {
			continue
		}
		for _, s := range strategies {
			if s.match(rec.Company, q) {
				matched = append(matched, rec)
				break
			}
		}
	}
	return matched
}
