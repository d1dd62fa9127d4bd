// Package stats implements the adaptive order-0 statistics engine that sits
// between the core transforms and the range coder: a Fenwick (binary
// indexed) tree of cumulative symbol frequencies, fronted by a Cartographer
// that assigns dense indices to an arbitrary comparable alphabet the first
// time each symbol is seen.
package stats

import "fmt"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "stats: " + string(e) }

// ErrUnknownSymbol is returned when FreqBounds or SymbolAt is asked about a
// symbol, or a cumulative target, that the model has never observed.
const ErrUnknownSymbol = Error("unknown symbol")

// unknownSymbolf wraps ErrUnknownSymbol with the offending value so callers
// get a useful message while errors.Is(err, ErrUnknownSymbol) still works.
func unknownSymbolf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnknownSymbol, fmt.Sprintf(format, args...))
}
