package market

// Candle 描述單日 OHLCV 資料，日期採 YYYY-MM-DD 字串以便直接序列化給前端。
type Candle struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
