package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"stock-insight/internal/domain/security"
)

// CSVSecuritySource 讀取單一市場的證券參考清單 CSV。
// 各來源的欄位名稱不同（台股清單與美股清單表頭各異），
// 在這裡解析成標準的 ticker/name 形狀後才交給 registry。
type CSVSecuritySource struct {
	name      string
	path      string
	market    security.Market
	tickerCol string
	nameCol   string
}

// NewTWSource 建立台股清單來源（表頭：代號, 名稱）。
func NewTWSource(path string) *CSVSecuritySource {
	return &CSVSecuritySource{
		name:      "tw-list",
		path:      path,
		market:    security.MarketTW,
		tickerCol: "代號",
		nameCol:   "名稱",
	}
}

// NewUSSource 建立美股清單來源（表頭：Symbol, Name）。
func NewUSSource(path string) *CSVSecuritySource {
	return &CSVSecuritySource{
		name:      "us-list",
		path:      path,
		market:    security.MarketUS,
		tickerCol: "Symbol",
		nameCol:   "Name",
	}
}

// Name 回傳來源識別名稱，用於載入日誌。
func (s *CSVSecuritySource) Name() string {
	return s.name
}

// Load 讀取 CSV 並回傳標準化的證券清單。
// 缺表頭、缺欄位的資料列直接略過；整個檔案讀不到才回傳錯誤，
// 由 registry 決定降級行為（該來源貢獻零筆）。
func (s *CSVSecuritySource) Load() ([]security.Identity, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", s.path)
	}

	tickerIdx, nameIdx := -1, -1
	for i, col := range rows[0] {
		switch col {
		case s.tickerCol:
			tickerIdx = i
		case s.nameCol:
			nameIdx = i
		}
	}
	if tickerIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("%s: header missing %q/%q columns", s.path, s.tickerCol, s.nameCol)
	}

	var out []security.Identity
	for _, row := range rows[1:] {
		if len(row) <= tickerIdx || len(row) <= nameIdx {
			continue
		}
		out = append(out, security.Identity{
			Ticker:        row[tickerIdx],
			CanonicalName: row[nameIdx],
			Market:        s.market,
		})
	}
	return out, nil
}
