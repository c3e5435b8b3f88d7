package news

// RawRecord 描述外部新聞語料中的一筆原始資料。
// 語料欄位填寫不一致：除了 content/text 至少一項外，任何欄位都可能缺漏，
// company 欄位可能是代號、名稱或兩者相連的字串。
type RawRecord struct {
	Company   string `json:"company,omitempty"`
	Date      string `json:"date,omitempty"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	Text      string `json:"text,omitempty"`
	ImpactPct *int   `json:"impact_pct,omitempty"`
}

// Item 為正規化後的新聞項目，所有欄位保證非空。
type Item struct {
	Company   string `json:"company"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Text      string `json:"text"`
	ImpactPct int    `json:"impact_pct"`
}
