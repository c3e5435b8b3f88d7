package security

import "fmt"

// Market 列舉支援的市場別。
type Market string

const (
	MarketTW Market = "TW"
	MarketUS Market = "US"
)

// Identity 描述單一證券的識別資料：代號與正式顯示名稱。
// 名稱可能為在地化字串（台股為中文）。
type Identity struct {
	Ticker        string
	CanonicalName string
	Market        Market
}

// ValidationError 收集多個驗證失敗原因。
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("security identity validation failed: %v", e.Reasons)
}

// Validate 檢查欄位是否符合基本完整性條件。
func (i Identity) Validate() error {
	var reasons []string

	if i.Ticker == "" {
		reasons = append(reasons, "ticker is required")
	}
	if i.CanonicalName == "" {
		reasons = append(reasons, "canonical name is required")
	}
	switch i.Market {
	case MarketTW, MarketUS:
		// ok
	default:
		reasons = append(reasons, "unsupported market")
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}
