package registry

import (
	"log"
	"sync/atomic"
	"time"
)

// Provider 持有目前生效的 Registry，並支援執行期整份重建。
// 重建採 copy-and-swap：新表完整建好後原子發布，讀取端不會看到半成品。
type Provider struct {
	sources []Source
	current atomic.Pointer[Registry]
}

// NewProvider 建立 Provider 並完成首次建表。
func NewProvider(sources ...Source) *Provider {
	p := &Provider{sources: sources}
	p.current.Store(Build(sources...))
	return p
}

// Current 取得目前生效的對照表快照。
func (p *Provider) Current() *Registry {
	return p.current.Load()
}

// Reload 重新載入全部來源並原子替換，回傳新表筆數。
func (p *Provider) Reload() int {
	start := time.Now()
	r := Build(p.sources...)
	p.current.Store(r)
	log.Printf("registry reload done entries=%d duration=%s", r.Len(), time.Since(start))
	return r.Len()
}
