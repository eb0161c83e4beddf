// Package bitlist converts bit-list specifications such as "22-24,9,1" into bit strings
// where the n-th character (1-indexed) is '1' if n is referenced by the specification and '0' otherwise.
package bitlist

import (
	"context"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/foldkit/foldkit/collection"
	"github.com/foldkit/foldkit/collector"
	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/safecast"
)

// Bits is the accumulator of ToBitString: the positions set so far and the highest position referenced.
type Bits struct {
	set    *bitset.BitSet
	length uint
}

func newBits() *Bits {
	return &Bits{set: bitset.New(0)}
}

// Add sets every position the token covers and extends the length if needed.
func (b *Bits) Add(t Token) *Bits {
	b.length = max(b.length, safecast.ToUint(t.To))
	for p := range t.Positions() {
		b.set.Set(safecast.ToUint(p - 1))
	}
	return b
}

// Merge unions other into b.
func (b *Bits) Merge(other *Bits) *Bits {
	if other == nil {
		return b
	}
	b.set.InPlaceUnion(other.set)
	b.length = max(b.length, other.length)
	return b
}

// Len returns the number of positions, i.e. the highest position referenced.
func (b *Bits) Len() int {
	return safecast.ToInt(b.length)
}

func (b *Bits) String() string {
	var builder strings.Builder
	builder.Grow(b.Len())
	for i := uint(0); i < b.length; i++ {
		if b.set.Test(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// ToBitString returns a collector turning tokens into a bit string. Token order does not matter.
func ToBitString() *collector.Collector[Token, *Bits, string] {
	return collector.New[Token, *Bits, string](
		newBits,
		(*Bits).Add,
		(*Bits).Merge,
		(*Bits).String,
		collector.Unordered,
	)
}

// Encode converts a specification into a bit string. An empty specification gives an empty string.
func Encode(spec string) (bits string, err error) {
	tokens, err := Parse(spec)
	if err != nil {
		return
	}
	return collector.Collect(tokens, ToBitString())
}

// EncodeParallel is similar to Encode but folds tokens in parallel.
func EncodeParallel(ctx context.Context, spec string, options ...collector.Option) (bits string, err error) {
	tokens, err := Parse(spec)
	if err != nil {
		return
	}
	return collector.CollectParallel(ctx, tokens, ToBitString(), options...)
}

// Decode converts a bit string into the shortest equivalent specification: maximal ranges in ascending order.
// Trailing zeros cannot be expressed by a specification and are therefore lost.
func Decode(bits string) (spec string, err error) {
	var tokens []Token
	start := 0
	for i, r := range bits {
		position := i + 1
		switch r {
		case '1':
			if start == 0 {
				start = position
			}
		case '0':
			if start != 0 {
				tokens = append(tokens, Token{From: start, To: position - 1})
				start = 0
			}
		default:
			err = commonerrors.Newf(commonerrors.ErrParse, "invalid character %q at position %d", r, position)
			return
		}
	}
	if start != 0 {
		tokens = append(tokens, Token{From: start, To: len(bits)})
	}
	spec = collection.ConvertSliceToCommaSeparatedList(tokens)
	return
}
