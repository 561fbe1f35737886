package model

import "testing"

func TestParseSignal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Signal
	}{
		{"exact buy", "BUY", SignalBuy},
		{"exact sell", "SELL", SignalSell},
		{"exact hold", "HOLD", SignalHold},
		{"lowercase", "buy", SignalBuy},
		{"surrounding whitespace", "  SELL \n", SignalSell},
		{"markdown emphasis", "**BUY**", SignalBuy},
		{"wrapped in prose", "The final decision is to BUY the stock.", SignalBuy},
		{"full proposal line", "FINAL TRANSACTION PROPOSAL: **SELL**", SignalSell},
		{"unrecognizable input", "I cannot determine a decision.", SignalHold},
		{"empty input", "", SignalHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSignal(tt.input); got != tt.want {
				t.Errorf("ParseSignal(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
