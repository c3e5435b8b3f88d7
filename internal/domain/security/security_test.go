package security

import "testing"

func TestIdentity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      Identity
		wantErr bool
	}{
		{
			name: "valid TW",
			id:   Identity{Ticker: "2330", CanonicalName: "台積電", Market: MarketTW},
		},
		{
			name: "valid US",
			id:   Identity{Ticker: "AAPL", CanonicalName: "Apple Inc.", Market: MarketUS},
		},
		{
			name:    "missing ticker",
			id:      Identity{CanonicalName: "台積電", Market: MarketTW},
			wantErr: true,
		},
		{
			name:    "missing name",
			id:      Identity{Ticker: "2330", Market: MarketTW},
			wantErr: true,
		},
		{
			name:    "unsupported market",
			id:      Identity{Ticker: "2330", CanonicalName: "台積電", Market: "JP"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
