package loader

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"stock-insight/internal/domain/news"
)

// CorpusStore 為語料的次要來源（目前為 Postgres，見 persistence/postgres）。
type CorpusStore interface {
	AllRecords(ctx context.Context) ([]news.RawRecord, error)
}

// CorpusLoader 載入新聞語料：主要來源為合併後的 JSON 檔，
// 讀取失敗時退回次要來源，兩者皆失敗則回空語料。
// 錯誤不會越過這個邊界，下游的合成器會補上佔位內容。
type CorpusLoader struct {
	path     string
	fallback CorpusStore
}

// NewCorpusLoader 建立語料載入器；fallback 可為 nil。
func NewCorpusLoader(path string, fallback CorpusStore) *CorpusLoader {
	return &CorpusLoader{path: path, fallback: fallback}
}

// Load 回傳目前可取得的語料（可能為空，絕不為錯誤）。
func (l *CorpusLoader) Load(ctx context.Context) []news.RawRecord {
	if records, err := l.loadFile(); err != nil {
		log.Printf("warning: corpus file load failed path=%s: %v", l.path, err)
	} else {
		return records
	}

	if l.fallback != nil {
		records, err := l.fallback.AllRecords(ctx)
		if err != nil {
			log.Printf("warning: corpus fallback load failed: %v", err)
		} else {
			log.Printf("corpus loaded from fallback records=%d", len(records))
			return records
		}
	}
	return nil
}

func (l *CorpusLoader) loadFile() ([]news.RawRecord, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	var records []news.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
