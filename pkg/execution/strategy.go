package execution

import (
	"fmt"

	"github.com/blotterhq/blotter/pkg/domain"
)

// Slice is one child order produced by an execution strategy. Slices are
// pure data and convert directly into journal actions.
type Slice struct {
	Symbol   string
	Quantity int64
	Price    float64
}

// Action converts a slice into a trade action of the given kind.
func (s Slice) Action(kind domain.ActionKind) domain.TradeAction {
	return domain.TradeAction{Kind: kind, Symbol: s.Symbol, Quantity: s.Quantity, Price: s.Price}
}

// Strategy plans how a parent order is broken into child slices. Strategies
// are stateless values; swapping one for another on an order is safe at any
// time before Send.
type Strategy interface {
	// Plan splits the parent quantity into child slices.
	Plan(symbol string, quantity int64, price float64) []Slice

	// Name identifies the strategy in logs and reports.
	Name() string
}

// TWAP splits an order evenly across a fixed number of time slices.
type TWAP struct {
	Slices int64
}

func (s TWAP) Name() string { return "TWAP" }

func (s TWAP) Plan(symbol string, quantity int64, price float64) []Slice {
	if s.Slices <= 0 {
		return []Slice{{Symbol: symbol, Quantity: quantity, Price: price}}
	}
	per := quantity / s.Slices
	rem := quantity % s.Slices

	out := make([]Slice, 0, s.Slices)
	for i := int64(0); i < s.Slices; i++ {
		qty := per
		if i == s.Slices-1 {
			qty += rem // last slice absorbs the remainder
		}
		if qty == 0 {
			continue
		}
		out = append(out, Slice{Symbol: symbol, Quantity: qty, Price: price})
	}
	return out
}

// VWAP participates at a fixed fraction of expected volume; the plan is a
// single child sized by the participation rate, with the remainder left for
// later sessions.
type VWAP struct {
	ParticipationRate float64
}

func (s VWAP) Name() string { return "VWAP" }

func (s VWAP) Plan(symbol string, quantity int64, price float64) []Slice {
	qty := int64(float64(quantity) * s.ParticipationRate)
	if qty <= 0 {
		qty = quantity
	}
	return []Slice{{Symbol: symbol, Quantity: qty, Price: price}}
}

// Iceberg shows only a fixed visible quantity at a time.
type Iceberg struct {
	VisibleQty int64
}

func (s Iceberg) Name() string { return "Iceberg" }

func (s Iceberg) Plan(symbol string, quantity int64, price float64) []Slice {
	if s.VisibleQty <= 0 {
		return []Slice{{Symbol: symbol, Quantity: quantity, Price: price}}
	}
	out := make([]Slice, 0, quantity/s.VisibleQty+1)
	for remaining := quantity; remaining > 0; remaining -= s.VisibleQty {
		qty := s.VisibleQty
		if remaining < qty {
			qty = remaining
		}
		out = append(out, Slice{Symbol: symbol, Quantity: qty, Price: price})
	}
	return out
}

// Order is a parent order with a swappable execution strategy.
type Order struct {
	Symbol   string
	Quantity int64
	Price    float64
	strategy Strategy
}

// NewOrder creates an order with an initial strategy.
func NewOrder(symbol string, quantity int64, price float64, strategy Strategy) *Order {
	return &Order{
		Symbol:   symbol,
		Quantity: quantity,
		Price:    price,
		strategy: strategy,
	}
}

// SetStrategy swaps the execution strategy.
func (o *Order) SetStrategy(strategy Strategy) {
	o.strategy = strategy
}

// Strategy returns the current strategy name.
func (o *Order) Strategy() string {
	if o.strategy == nil {
		return ""
	}
	return o.strategy.Name()
}

// Send plans the order with the current strategy.
func (o *Order) Send() ([]Slice, error) {
	if o.strategy == nil {
		return nil, fmt.Errorf("order %s has no execution strategy", o.Symbol)
	}
	return o.strategy.Plan(o.Symbol, o.Quantity, o.Price), nil
}
