package source

// Session bundles the per-compilation state that the reference design
// threads through thread-local "session globals": the source map and the
// symbol interner. Go has no thread-local storage, so instead of faking one
// with a goroutine-local hack, every function that would have reached for
// session globals takes a *Session (or embeds one) explicitly — the
// substitution the base spec itself documents for non-TLS languages.
//
// A Session is created once per compilation and is safe for concurrent use:
// Map.Add and Symbols.Intern are both internally synchronized.
type Session struct {
	Map      *SourceMap
	Symbols  *Interner
	Keywords Keywords
}

// NewSession creates a Session with a fresh SourceMap and a pre-seeded
// symbol interner.
func NewSession() *Session {
	in, kw := NewSessionInterner()
	return &Session{
		Map:      NewSourceMap(),
		Symbols:  in,
		Keywords: kw,
	}
}

// Intern is a convenience forward to Symbols.Intern.
func (s *Session) Intern(str string) Symbol { return s.Symbols.Intern(str) }

// Str is a convenience forward to Symbols.MustLookup.
func (s *Session) Str(sym Symbol) string { return s.Symbols.MustLookup(sym) }
