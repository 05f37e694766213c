package calculator

import (
	"fmt"
	"sort"
	"strings"
)

// Calculator dispatches float64 operations by symbol.
type Calculator struct {
	operations map[string]Operation
}

// NewCalculator registers the given operations. A nil slice is rejected;
// nil entries are skipped and later duplicates replace earlier ones.
func NewCalculator(ops []Operation) (*Calculator, error) {
	if ops == nil {
		return nil, fmt.Errorf("%w: operations cannot be nil", ErrInvalidArgument)
	}

	c := &Calculator{operations: make(map[string]Operation, len(ops))}
	for _, op := range ops {
		if op == nil {
			continue
		}
		c.operations[op.Symbol()] = op
	}
	return c, nil
}

// Execute runs the operation registered under symbol.
func (c *Calculator) Execute(symbol string, a, b float64) (float64, error) {
	if strings.TrimSpace(symbol) == "" {
		return 0, emptySymbol()
	}

	op, ok := c.operations[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: invalid operation symbol: %s", ErrInvalidOperation, symbol)
	}
	return op.Calculate(a, b)
}

// Symbols returns the registered symbols in sorted order.
func (c *Calculator) Symbols() []string {
	return sortedKeys(c.operations)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
