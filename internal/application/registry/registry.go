package registry

import (
	"log"

	"stock-insight/internal/domain/security"
)

// Source 提供單一市場的證券參考清單。
// 欄位名稱差異由各資料來源自行解析，送進 Registry 的列已是標準形狀。
type Source interface {
	Name() string
	Load() ([]security.Identity, error)
}

// Registry 保存代號與正式名稱的雙向對照，建立後唯讀。
type Registry struct {
	entries      []security.Identity
	nameByTicker map[string]string
	tickerByName map[string]string
}

// Build 將所有來源合併為一份對照表。
// 來源依序載入，代號重複時後載入者覆蓋先前的名稱；單一來源載入失敗
// 僅記錄警告並貢獻零筆，不會中斷其他來源。
func Build(sources ...Source) *Registry {
	r := &Registry{
		nameByTicker: make(map[string]string),
		tickerByName: make(map[string]string),
	}
	for _, src := range sources {
		rows, err := src.Load()
		if err != nil {
			log.Printf("warning: registry source load failed source=%s: %v", src.Name(), err)
			continue
		}
		loaded := 0
		for _, row := range rows {
			if err := row.Validate(); err != nil {
				continue
			}
			if _, exists := r.nameByTicker[row.Ticker]; exists {
				for i := range r.entries {
					if r.entries[i].Ticker == row.Ticker {
						r.entries[i] = row
						break
					}
				}
			} else {
				r.entries = append(r.entries, row)
			}
			r.nameByTicker[row.Ticker] = row.CanonicalName
			loaded++
		}
		log.Printf("registry source loaded source=%s rows=%d", src.Name(), loaded)
	}
	// 反向對照由正向資料推導；名稱重複時同樣後載入者勝出。
	for _, e := range r.entries {
		r.tickerByName[e.CanonicalName] = e.Ticker
	}
	return r
}

// NameByTicker 依代號查正式名稱。
func (r *Registry) NameByTicker(ticker string) (string, bool) {
	name, ok := r.nameByTicker[ticker]
	return name, ok
}

// TickerByName 依正式名稱查代號。
func (r *Registry) TickerByName(name string) (string, bool) {
	ticker, ok := r.tickerByName[name]
	return ticker, ok
}

// Entries 回傳載入順序的全部證券清單（呼叫端不得修改）。
func (r *Registry) Entries() []security.Identity {
	return r.entries
}

// Len 回傳對照表筆數。
func (r *Registry) Len() int {
	return len(r.nameByTicker)
}
