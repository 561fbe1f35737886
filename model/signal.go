package model

import "strings"

// Signal is the extracted trading decision.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// ParseSignal normalizes free-form extraction output to a Signal. The
// pipeline contract is completion, not correctness: anything that is not
// recognizably BUY or SELL becomes HOLD rather than an error.
func ParseSignal(text string) Signal {
	t := strings.ToUpper(strings.TrimSpace(text))

	switch t {
	case "BUY", "SELL", "HOLD":
		return Signal(t)
	}

	// Extraction replies sometimes wrap the verdict in prose or markdown
	// emphasis. Scan for the first recognizable token.
	for _, s := range []Signal{SignalBuy, SignalSell, SignalHold} {
		if strings.Contains(t, string(s)) {
			return s
		}
	}
	return SignalHold
}
