package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// StepFunc executes one trade-script directive against a desk and its
// portfolio. Params carries the directive's raw attributes as decoded from
// YAML or JSON.
type StepFunc func(ctx context.Context, desk *blotter.Desk, p *domain.Portfolio, params map[string]any) error

// Registry maps directive names to their implementations.
type Registry struct {
	mu    sync.RWMutex
	steps map[string]StepFunc
}

// New creates a registry preloaded with the built-in directives:
// buy, sell, undo, redo, archive.
func New() *Registry {
	r := &Registry{
		steps: make(map[string]StepFunc),
	}
	r.Register("buy", tradeStep(domain.KindBuy))
	r.Register("sell", tradeStep(domain.KindSell))
	r.Register("undo", undoStep)
	r.Register("redo", redoStep)
	r.Register("archive", archiveStep)
	return r
}

// Register adds a directive to the registry.
// If a directive with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn StepFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[name] = fn
}

// Execute looks up a directive by name and runs it.
// Returns an error if the directive is not found.
func (r *Registry) Execute(ctx context.Context, name string, desk *blotter.Desk, p *domain.Portfolio, params map[string]any) error {
	r.mu.RLock()
	fn, ok := r.steps[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown directive: %s", name)
	}

	return fn(ctx, desk, p, params)
}

// tradeParams is the wire shape of a buy/sell directive.
type tradeParams struct {
	Symbol   string  `mapstructure:"symbol"`
	Quantity int64   `mapstructure:"quantity"`
	Price    float64 `mapstructure:"price"`
}

func tradeStep(kind domain.ActionKind) StepFunc {
	return func(ctx context.Context, desk *blotter.Desk, p *domain.Portfolio, params map[string]any) error {
		var tp tradeParams
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &tp,
			WeaklyTypedInput: true, // YAML numbers arrive as int or float64
		})
		if err != nil {
			return err
		}
		if err := decoder.Decode(params); err != nil {
			return fmt.Errorf("bad %s directive: %w", kind, err)
		}

		action := domain.TradeAction{
			Kind:     kind,
			Symbol:   tp.Symbol,
			Quantity: tp.Quantity,
			Price:    tp.Price,
		}
		return desk.Execute(ctx, action, p)
	}
}

func undoStep(ctx context.Context, desk *blotter.Desk, p *domain.Portfolio, params map[string]any) error {
	_, err := desk.Undo(ctx, p)
	return err
}

func redoStep(ctx context.Context, desk *blotter.Desk, p *domain.Portfolio, params map[string]any) error {
	_, err := desk.Redo(ctx, p)
	return err
}

func archiveStep(ctx context.Context, desk *blotter.Desk, p *domain.Portfolio, params map[string]any) error {
	var ap struct {
		Name string `mapstructure:"name"`
	}
	if err := mapstructure.Decode(params, &ap); err != nil {
		return fmt.Errorf("bad archive directive: %w", err)
	}
	if ap.Name == "" {
		return fmt.Errorf("archive directive requires a name")
	}
	return desk.Archive(ctx, ap.Name)
}
