package domain

import "fmt"

// ActionKind discriminates the closed set of trade actions.
type ActionKind string

const (
	// KindBuy acquires shares and debits cash.
	KindBuy ActionKind = "buy"

	// KindSell releases shares and credits cash.
	KindSell ActionKind = "sell"
)

// Kinds returns every known discriminant. It is the single source of truth
// for exhaustiveness checks: adding a kind here without extending Apply and
// Invert makes SelfCheck fail at startup.
func Kinds() []ActionKind {
	return []ActionKind{KindBuy, KindSell}
}

// TradeAction is an immutable description of one reversible portfolio
// mutation. It is pure data: it never holds a reference to a Portfolio, so
// copies are interchangeable and the value stays meaningful regardless of
// what happens to any receiver it was applied to.
type TradeAction struct {
	Kind     ActionKind `json:"kind" yaml:"kind"`
	Symbol   string     `json:"symbol" yaml:"symbol"`
	Quantity int64      `json:"quantity" yaml:"quantity"`
	Price    float64    `json:"price" yaml:"price"`
}

// Buy constructs a buy action.
func Buy(symbol string, quantity int64, price float64) TradeAction {
	return TradeAction{Kind: KindBuy, Symbol: symbol, Quantity: quantity, Price: price}
}

// Sell constructs a sell action.
func Sell(symbol string, quantity int64, price float64) TradeAction {
	return TradeAction{Kind: KindSell, Symbol: symbol, Quantity: quantity, Price: price}
}

// Notional returns the cash value of the action (quantity * price).
func (a TradeAction) Notional() float64 {
	return float64(a.Quantity) * a.Price
}

// String renders the action as a single audit-trail line.
func (a TradeAction) String() string {
	verb := "????"
	switch a.Kind {
	case KindBuy:
		verb = "BUY"
	case KindSell:
		verb = "SELL"
	}
	return fmt.Sprintf("%-4s %d %s @ $%.2f", verb, a.Quantity, a.Symbol, a.Price)
}

// Validate checks the action parameters before dispatch. Dispatch rejects
// invalid actions so the journal never records them.
func (a TradeAction) Validate() error {
	if a.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidAction)
	}
	if a.Quantity <= 0 {
		return fmt.Errorf("%w: quantity %d", ErrInvalidAction, a.Quantity)
	}
	if a.Price <= 0 {
		return fmt.Errorf("%w: price %.4f", ErrInvalidAction, a.Price)
	}
	return nil
}
