package twse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stock-insight/internal/domain/market"
)

// Client 呼叫行情資料服務的日 K 端點，實作 marketdata.Fetcher。
// 服務位址由設定提供；回應為日期遞減的 OHLCV 陣列。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 建立行情客戶端。
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// DailyCandles 取 symbol 最近 days 天的日 K。
func (c *Client) DailyCandles(ctx context.Context, symbol string, days int) ([]market.Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("days", strconv.Itoa(days))

	body, err := c.call(ctx, "/api/v1/candles", params)
	if err != nil {
		return nil, err
	}

	var candles []market.Candle
	if err := json.Unmarshal(body, &candles); err != nil {
		return nil, fmt.Errorf("parse candles: %w", err)
	}
	return candles, nil
}

func (c *Client) call(ctx context.Context, path string, params url.Values) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data api error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
