package resolver

import (
	"testing"

	"stock-insight/internal/application/registry"
	"stock-insight/internal/domain/security"
)

type staticSource struct {
	rows []security.Identity
}

func (s staticSource) Name() string                       { return "static" }
func (s staticSource) Load() ([]security.Identity, error) { return s.rows, nil }

func buildRegistry(rows ...security.Identity) *registry.Registry {
	return registry.Build(staticSource{rows: rows})
}

func TestResolver_Resolve(t *testing.T) {
	reg := buildRegistry(
		security.Identity{Ticker: "2330", CanonicalName: "台積電", Market: security.MarketTW},
		security.Identity{Ticker: "AAPL", CanonicalName: "Apple Inc.", Market: security.MarketUS},
	)
	r := New(reg)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "exact ticker", token: "2330", want: "台積電"},
		{name: "exact canonical name", token: "台積電", want: "台積電"},
		{name: "ticker plus name concatenation", token: "2330台積電", want: "台積電"},
		{name: "us ticker", token: "AAPL", want: "Apple Inc."},
		{name: "unknown token passes through", token: "未知公司", want: "未知公司"},
		{name: "no trimming applied", token: " 2330", want: " 2330"},
		{name: "no case folding applied", token: "aapl", want: "aapl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.token); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolver_CanonicalNameResolvesToItself(t *testing.T) {
	reg := buildRegistry(security.Identity{Ticker: "2330", CanonicalName: "台積電", Market: security.MarketTW})
	r := New(reg)

	resolved := r.Resolve("2330")
	if resolved != "台積電" {
		t.Fatalf("Resolve(2330) = %q", resolved)
	}
	if again := r.Resolve(resolved); again != resolved {
		t.Errorf("Resolve(%q) = %q, canonical names must resolve to themselves", resolved, again)
	}
}

func TestResolver_EmptyRegistryPassesEverythingThrough(t *testing.T) {
	r := New(buildRegistry())

	for _, token := range []string{"2330", "台積電", "2330台積電", "anything"} {
		if got := r.Resolve(token); got != token {
			t.Errorf("Resolve(%q) = %q, want pass-through with empty registry", token, got)
		}
	}
}
