package newsfeed

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestSynthesizer() *Synthesizer {
	return NewSynthesizerWith(func() time.Time { return testNow }, rand.New(rand.NewSource(7)))
}

func TestSynthesize_BatchShape(t *testing.T) {
	s := newTestSynthesizer()
	items := s.Synthesize("台積電")

	if len(items) != 5 {
		t.Fatalf("Synthesize() returned %d items, want exactly 5", len(items))
	}

	for i, item := range items {
		wantDate := testNow.AddDate(0, 0, -i).Format("2006-01-02")
		if item.Date != wantDate {
			t.Errorf("item %d Date = %q, want %q (strictly decreasing from today)", i, item.Date, wantDate)
		}
		if item.Company != "台積電" {
			t.Errorf("item %d Company = %q, want 台積電", i, item.Company)
		}
		wantTitle := fmt.Sprintf("台積電 相關新聞 #%d", i+1)
		if item.Title != wantTitle {
			t.Errorf("item %d Title = %q, want %q", i, item.Title, wantTitle)
		}
		if item.Content == "" || item.Content != item.Text {
			t.Errorf("item %d content/text must be non-empty and equal", i)
		}
		if !strings.Contains(item.Content, "台積電") {
			t.Errorf("item %d Content must embed company name, got %q", i, item.Content)
		}
		if item.ImpactPct < 40 || item.ImpactPct > 70 {
			t.Errorf("item %d ImpactPct = %d, want in [40,70]", i, item.ImpactPct)
		}
	}
}
