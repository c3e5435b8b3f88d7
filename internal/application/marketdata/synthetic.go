package marketdata

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"stock-insight/internal/domain/market"
)

const dateLayout = "2006-01-02"

// SyntheticSeries 以隨機漫步產生指定天數的佔位日 K 序列，日期由近到遠。
// 亂數種子取自代號雜湊，同一代號每次產生相同序列，前端圖表不會跳動。
func SyntheticSeries(symbol string, days int, today time.Time) []market.Candle {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	price := 100 + rng.Float64()*400
	out := make([]market.Candle, 0, days)
	for i := 0; i < days; i++ {
		drift := (rng.Float64() - 0.5) * price * 0.06
		open := price
		close := price + drift
		high := maxFloat(open, close) * (1 + rng.Float64()*0.02)
		low := minFloat(open, close) * (1 - rng.Float64()*0.02)
		out = append(out, market.Candle{
			Date:   today.AddDate(0, 0, -i).Format(dateLayout),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: 1_000_000 + rng.Int63n(4_000_000),
		})
		price = close
	}
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
