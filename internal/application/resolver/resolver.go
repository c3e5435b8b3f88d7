package resolver

import "stock-insight/internal/domain/security"

// RegistryView 是 Resolver 對證券對照表的唯讀需求。
type RegistryView interface {
	NameByTicker(ticker string) (string, bool)
	TickerByName(name string) (string, bool)
	Entries() []security.Identity
}

// Resolver 將使用者輸入的任意公司字串解析為正式名稱。
type Resolver struct {
	registry RegistryView
}

// New 建立 Resolver。
func New(registry RegistryView) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve 依固定優先序解析輸入，永遠回傳一個盡力而為的正式名稱：
//  1. 輸入即為已知代號 → 回傳對應名稱
//  2. 輸入即為某正式名稱 → 原樣回傳
//  3. 輸入等於「代號+名稱」相連字串（如 "2330台積電"）→ 回傳名稱
//  4. 皆未命中 → 原樣回傳輸入
//
// 比對一律採字面相等，不做大小寫轉換、去空白或部分比對。
func (r *Resolver) Resolve(rawToken string) string {
	if name, ok := r.registry.NameByTicker(rawToken); ok {
		return name
	}
	if _, ok := r.registry.TickerByName(rawToken); ok {
		return rawToken
	}
	for _, e := range r.registry.Entries() {
		if rawToken == e.Ticker+e.CanonicalName {
			return e.CanonicalName
		}
	}
	return rawToken
}
