package newsfeed

import (
	"math/rand"
	"time"

	"stock-insight/internal/domain/news"
)

const dateLayout = "2006-01-02"

// Normalizer 將缺漏欄位的原始新聞補齊為完整的新聞項目。
// 除了讀取注入的時鐘與亂數來源外沒有副作用。
type Normalizer struct {
	now func() time.Time
	rng *rand.Rand
}

// NewNormalizer 建立使用系統時鐘與預設亂數來源的 Normalizer。
func NewNormalizer() *Normalizer {
	return NewNormalizerWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewNormalizerWith 允許注入時鐘與亂數來源，供測試固定輸出。
func NewNormalizerWith(now func() time.Time, rng *rand.Rand) *Normalizer {
	return &Normalizer{now: now, rng: rng}
}

// Normalize 逐欄位套用補值規則：
//   - date 缺漏 → 今日往回 1..30 天的隨機日期
//   - title 缺漏 → text 前 20 字加 "..."，無 text 則 "About " + 正式名稱
//   - content/text 僅其中一個存在時互相鏡射；兩者皆缺則維持空字串
//   - impact_pct 缺漏 → [40,70] 的隨機整數
//
// company 欄位一律以解析出的正式名稱覆寫，語料原本的標記不再保留。
func (n *Normalizer) Normalize(rec news.RawRecord, canonicalName string) news.Item {
	item := news.Item{
		Company: canonicalName,
		Date:    rec.Date,
		Title:   rec.Title,
		Content: rec.Content,
		Text:    rec.Text,
	}

	if item.Date == "" {
		back := n.rng.Intn(30) + 1
		item.Date = n.now().AddDate(0, 0, -back).Format(dateLayout)
	}

	if item.Title == "" {
		if rec.Text != "" {
			item.Title = truncateRunes(rec.Text, 20) + "..."
		} else {
			item.Title = "About " + canonicalName
		}
	}

	if item.Content == "" && item.Text != "" {
		item.Content = item.Text
	} else if item.Text == "" && item.Content != "" {
		item.Text = item.Content
	}

	if rec.ImpactPct != nil {
		item.ImpactPct = *rec.ImpactPct
	} else {
		item.ImpactPct = n.randomImpact()
	}

	return item
}

func (n *Normalizer) randomImpact() int {
	return n.rng.Intn(31) + 40
}

// truncateRunes 依字元（非位元組）截斷，中文標題才不會被切在多位元組中間。
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
