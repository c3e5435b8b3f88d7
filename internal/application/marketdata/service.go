package marketdata

import (
	"context"
	"log"
	"time"

	"stock-insight/internal/domain/market"
)

const defaultDays = 30

// Fetcher 為即時行情來源的最小需求。
type Fetcher interface {
	DailyCandles(ctx context.Context, symbol string, days int) ([]market.Candle, error)
}

// Service 取得個股日 K：即時來源失敗或回空時改用合成序列，
// 呼叫端永遠拿到形狀正確的非空序列。
type Service struct {
	fetcher Fetcher
	now     func() time.Time
}

// NewService 建立行情服務；fetcher 可為 nil，此時一律回合成序列。
func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher, now: time.Now}
}

// Series 回傳 symbol 最近 days 天的日 K（日期遞減）。days <= 0 時取預設 30 天。
func (s *Service) Series(ctx context.Context, symbol string, days int) []market.Candle {
	if days <= 0 {
		days = defaultDays
	}
	if s.fetcher != nil {
		candles, err := s.fetcher.DailyCandles(ctx, symbol, days)
		if err != nil {
			log.Printf("warning: market data fetch failed symbol=%s: %v, using synthetic series", symbol, err)
		} else if len(candles) > 0 {
			return candles
		} else {
			log.Printf("market data empty symbol=%s, using synthetic series", symbol)
		}
	}
	return SyntheticSeries(symbol, days, s.now())
}
