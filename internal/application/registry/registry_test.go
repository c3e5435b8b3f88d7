package registry

import (
	"errors"
	"testing"

	"stock-insight/internal/domain/security"
)

type fakeSource struct {
	name string
	rows []security.Identity
	err  error
}

func (f *fakeSource) Name() string                        { return f.name }
func (f *fakeSource) Load() ([]security.Identity, error)  { return f.rows, f.err }

func twRow(ticker, name string) security.Identity {
	return security.Identity{Ticker: ticker, CanonicalName: name, Market: security.MarketTW}
}

func usRow(ticker, name string) security.Identity {
	return security.Identity{Ticker: ticker, CanonicalName: name, Market: security.MarketUS}
}

func TestBuild_MergesSources(t *testing.T) {
	r := Build(
		&fakeSource{name: "tw", rows: []security.Identity{twRow("2330", "台積電"), twRow("2317", "鴻海")}},
		&fakeSource{name: "us", rows: []security.Identity{usRow("AAPL", "Apple Inc.")}},
	)

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if name, ok := r.NameByTicker("2330"); !ok || name != "台積電" {
		t.Errorf("NameByTicker(2330) = %q, %v", name, ok)
	}
	if ticker, ok := r.TickerByName("Apple Inc."); !ok || ticker != "AAPL" {
		t.Errorf("TickerByName(Apple Inc.) = %q, %v", ticker, ok)
	}
}

func TestBuild_LastWriteWinsOnTickerCollision(t *testing.T) {
	r := Build(
		&fakeSource{name: "first", rows: []security.Identity{twRow("2330", "台積電")}},
		&fakeSource{name: "second", rows: []security.Identity{usRow("2330", "TSMC ADR")}},
	)

	if name, _ := r.NameByTicker("2330"); name != "TSMC ADR" {
		t.Errorf("NameByTicker(2330) = %q, want later source to win", name)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestBuild_ReverseViewCollisionLastWins(t *testing.T) {
	r := Build(&fakeSource{name: "tw", rows: []security.Identity{
		twRow("1111", "同名公司"),
		twRow("2222", "同名公司"),
	}})

	if ticker, _ := r.TickerByName("同名公司"); ticker != "2222" {
		t.Errorf("TickerByName(同名公司) = %q, want 2222 (last loaded)", ticker)
	}
}

func TestBuild_FailingSourceDegradesToZeroRows(t *testing.T) {
	r := Build(
		&fakeSource{name: "broken", err: errors.New("file not found")},
		&fakeSource{name: "ok", rows: []security.Identity{twRow("2330", "台積電")}},
	)

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (broken source contributes nothing)", r.Len())
	}
	if _, ok := r.NameByTicker("2330"); !ok {
		t.Error("healthy source should still load after a broken one")
	}
}

func TestBuild_SkipsInvalidRows(t *testing.T) {
	r := Build(&fakeSource{name: "tw", rows: []security.Identity{
		twRow("2330", "台積電"),
		{Ticker: "", CanonicalName: "無代號", Market: security.MarketTW},
	}})

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestProvider_ReloadSwapsAtomically(t *testing.T) {
	src := &fakeSource{name: "tw", rows: []security.Identity{twRow("2330", "台積電")}}
	p := NewProvider(src)

	before := p.Current()
	if before.Len() != 1 {
		t.Fatalf("initial Len() = %d, want 1", before.Len())
	}

	src.rows = append(src.rows, twRow("2317", "鴻海"))
	if n := p.Reload(); n != 2 {
		t.Fatalf("Reload() = %d, want 2", n)
	}

	if before.Len() != 1 {
		t.Error("old snapshot must stay untouched after reload")
	}
	if p.Current().Len() != 2 {
		t.Errorf("Current().Len() = %d, want 2", p.Current().Len())
	}
}
