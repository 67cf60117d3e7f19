package font

import (
	"fmt"
	"sync"
)

// Parser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/sfnt.
type Parser interface {
	// Parse parses font data and returns a Provider.
	// Parse may retain data; callers pass a private copy.
	Parse(data []byte) (Provider, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(data []byte) (Provider, error)

// Parse implements Parser.
func (f ParserFunc) Parse(data []byte) (Provider, error) {
	return f(data)
}

// defaultParserName is the name of the default parser.
const defaultParserName = "sfnt"

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]Parser{
		defaultParserName: ParserFunc(parseSFNT),
	}
)

// RegisterParser registers a custom font parser under name, replacing any
// parser previously registered with that name.
func RegisterParser(name string, parser Parser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
// An empty name selects the default parser.
func getParser(name string) (Parser, error) {
	if name == "" {
		name = defaultParserName
	}
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: no parser %q", ErrUnsupportedFontType, name)
	}
	return p, nil
}
