package newsfeed

import (
	"fmt"
	"math/rand"
	"time"

	"stock-insight/internal/domain/news"
)

const synthesizedCount = 5

// Synthesizer 在語料完全沒有命中時產生佔位新聞，
// 確保每次解析都回傳非空且形狀完整的結果。
type Synthesizer struct {
	now func() time.Time
	rng *rand.Rand
}

// NewSynthesizer 建立使用系統時鐘與預設亂數來源的 Synthesizer。
func NewSynthesizer() *Synthesizer {
	return NewSynthesizerWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSynthesizerWith 允許注入時鐘與亂數來源，供測試固定輸出。
func NewSynthesizerWith(now func() time.Time, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{now: now, rng: rng}
}

// Synthesize 產生固定 5 筆佔位新聞：日期自今日起逐日遞減，
// 標題與內文嵌入正式名稱與序號，僅 impact_pct 帶隨機成分。
func (s *Synthesizer) Synthesize(canonicalName string) []news.Item {
	today := s.now()
	items := make([]news.Item, 0, synthesizedCount)
	for i := 0; i < synthesizedCount; i++ {
		body := fmt.Sprintf("這是 %s 的市場動態摘要（第 %d 則）。目前暫無即時新聞，以下為系統產生的佔位內容。", canonicalName, i+1)
		items = append(items, news.Item{
			Company:   canonicalName,
			Date:      today.AddDate(0, 0, -i).Format(dateLayout),
			Title:     fmt.Sprintf("%s 相關新聞 #%d", canonicalName, i+1),
			Content:   body,
			Text:      body,
			ImpactPct: s.rng.Intn(31) + 40,
		})
	}
	return items
}
