// Package joke holds the fixed joke catalog and the runtime-independent
// handler that serves one random entry per request.
package joke

// jokes is the embedded catalog. It is never mutated after init.
var jokes = [...]string{
	"Chuck Norris doesn't read books. He stares them down until he gets the information he wants.",
	"Time waits for no man. Unless that man is Chuck Norris.",
	"If you spell Chuck Norris in Scrabble, you win. Forever.",
	"Chuck Norris can divide by zero.",
	"When Chuck Norris does a pushup, he isn't lifting himself up, he's pushing the Earth down.",
	"Chuck Norris is the reason why Waldo is hiding.",
	"Chuck Norris counted to infinity... twice.",
	"Chuck Norris doesn't wear a watch. HE decides what time it is.",
	"Chuck Norris can slam a revolving door.",
	"Chuck Norris doesn't call the wrong number. You answer the wrong phone.",
	"Chuck Norris can delete the Recycling Bin.",
	"Chuck Norris can win a game of Connect Four in only three moves.",
	"When the Boogeyman goes to sleep every night, he checks his closet for Chuck Norris.",
	"Chuck Norris once kicked a horse in the chin. Its descendants are now called giraffes.",
}

// Catalog is a read-only, ordered list of jokes. The zero value is empty.
type Catalog struct {
	entries []string
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{entries: jokes[:]}
}

// NewCatalog copies entries into a new catalog so later changes to the
// caller's slice are not observed.
func NewCatalog(entries ...string) Catalog {
	cp := make([]string, len(entries))
	copy(cp, entries)
	return Catalog{entries: cp}
}

// Len reports the number of jokes.
func (c Catalog) Len() int { return len(c.entries) }

// At returns the joke at index i. It panics if i is out of range.
func (c Catalog) At(i int) string { return c.entries[i] }

// Contains reports whether s is one of the catalog entries.
func (c Catalog) Contains(s string) bool {
	for _, e := range c.entries {
		if e == s {
			return true
		}
	}
	return false
}

// All returns a copy of the entries in catalog order.
func (c Catalog) All() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
