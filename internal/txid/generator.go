package txid

import (
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
)

const (
	prefix         = "TXN"
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength   = 6
)

// Generator produces transaction ids of the form
// TXN<millis-since-epoch><6 uppercase alphanumerics>. Ids are generated
// before any network call and never regenerated; the ledger's primary key
// is the uniqueness backstop.
type Generator struct {
	suffix func() string
}

func NewGenerator() (*Generator, error) {
	gen, err := nanoid.CustomASCII(suffixAlphabet, suffixLength)
	if err != nil {
		return nil, fmt.Errorf("failed to init txid suffix generator: %w", err)
	}
	return &Generator{suffix: gen}, nil
}

func (g *Generator) Next() string {
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), g.suffix())
}
