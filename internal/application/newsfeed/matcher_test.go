package newsfeed

import (
	"testing"

	"stock-insight/internal/domain/news"
)

type fakeTickers map[string]string

func (f fakeTickers) NameByTicker(ticker string) (string, bool) {
	name, ok := f[ticker]
	return name, ok
}

func TestMatcher_Match(t *testing.T) {
	tickers := fakeTickers{"2330": "台積電"}
	m := NewMatcher(tickers)

	corpus := []news.RawRecord{
		{Company: "台積電", Text: "exact"},
		{Company: "2330台積電", Text: "substring via token"},
		{Company: "2330", Text: "ticker only label"},
		{Company: "鴻海", Text: "other company"},
		{Text: "no company label"},
	}

	got := m.Match("2330", "台積電", corpus)
	if len(got) != 3 {
		t.Fatalf("Match() returned %d records, want 3", len(got))
	}
	wantTexts := []string{"exact", "substring via token", "ticker only label"}
	for i, rec := range got {
		if rec.Text != wantTexts[i] {
			t.Errorf("record %d = %q, want %q (corpus order must be preserved)", i, rec.Text, wantTexts[i])
		}
	}
}

func TestMatcher_ExcludesEmptyCompany(t *testing.T) {
	m := NewMatcher(fakeTickers{})
	corpus := []news.RawRecord{
		{Text: "a record without company"},
		{Company: "", Text: "explicit empty"},
	}
	if got := m.Match("台積電", "台積電", corpus); len(got) != 0 {
		t.Errorf("Match() = %d records, want 0 for empty company labels", len(got))
	}
}

func TestMatcher_TickerRuleNeedsKnownTicker(t *testing.T) {
	m := NewMatcher(fakeTickers{})
	corpus := []news.RawRecord{{Company: "XYZ", Text: "label equals raw token"}}

	// XYZ 不是已知代號：exact 與 substring 規則仍會命中（token 是 company 的子字串）。
	got := m.Match("XYZ", "某公司", corpus)
	if len(got) != 1 {
		t.Fatalf("Match() = %d, want 1 via substring rule", len(got))
	}

	// 子字串也不成立時，未知代號不該經由 token-as-ticker 規則收錄。
	corpus = []news.RawRecord{{Company: "ABC", Text: "unrelated"}}
	if got := m.Match("XYZ", "某公司", corpus); len(got) != 0 {
		t.Errorf("Match() = %d, want 0 for unknown ticker", len(got))
	}
}

func TestMatcher_SubstringImprecisionIsPreserved(t *testing.T) {
	// 短代號是其他公司標籤的子字串時會誤收，這是沿用來源系統的既有行為。
	m := NewMatcher(fakeTickers{"23": "短代號公司"})
	corpus := []news.RawRecord{{Company: "2330台積電", Text: "unrelated but contains token"}}

	if got := m.Match("23", "短代號公司", corpus); len(got) != 1 {
		t.Errorf("Match() = %d, want 1 (substring false positive preserved)", len(got))
	}
}
