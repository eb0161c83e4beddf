package bitlist

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/foldkit/foldkit/collection"
	"github.com/foldkit/foldkit/commonerrors"
)

const (
	TokenSeparator = ","
	RangeSeparator = "-"
	// MaxPosition is the highest position a specification may reference.
	MaxPosition = 1 << 24
)

// Token is an inclusive range of 1-indexed positions. A single position n is the range [n, n].
type Token struct {
	From int
	To   int
}

func (t Token) String() string {
	if t.From == t.To {
		return strconv.Itoa(t.From)
	}
	return fmt.Sprintf("%d%v%d", t.From, RangeSeparator, t.To)
}

// Positions iterates over every position the token covers.
func (t Token) Positions() iter.Seq[int] {
	return collection.InclusiveRangeSequence(t.From, t.To)
}

// Validate checks the token is a non-empty range of positions within [1, MaxPosition].
func (t Token) Validate() error {
	if t.From < 1 {
		return commonerrors.Newf(commonerrors.ErrParse, "position %d is lower than 1", t.From)
	}
	if t.From > t.To {
		return commonerrors.Newf(commonerrors.ErrParse, "range start %d is greater than its end %d", t.From, t.To)
	}
	if t.To > MaxPosition {
		return commonerrors.Newf(commonerrors.ErrParse, "position %d exceeds the maximum position %d", t.To, MaxPosition)
	}
	return nil
}

// ParseToken parses either `<n>` or `<from>-<to>`.
func ParseToken(s string) (t Token, err error) {
	s = strings.TrimSpace(s)
	from, to, isRange := strings.Cut(s, RangeSeparator)
	t.From, err = parsePosition(from)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrParse, err, "invalid token %q", s)
		return
	}
	t.To = t.From
	if isRange {
		t.To, err = parsePosition(to)
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrParse, err, "invalid token %q", s)
			return
		}
	}
	err = t.Validate()
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrParse, err, "invalid token %q", s)
	}
	return
}

func parsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, commonerrors.New(commonerrors.ErrParse, "missing position")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, commonerrors.Newf(commonerrors.ErrParse, "%q is not a decimal number", s)
		}
	}
	return strconv.Atoi(s)
}

// Parse splits a specification into tokens. Every malformed token is reported and no token is returned if any is invalid.
// A blank specification holds no token but an empty token e.g. in "1,,3" is malformed.
func Parse(spec string) (tokens []Token, err error) {
	elements := collection.ParseList(spec, TokenSeparator)
	tokens = make([]Token, 0, len(elements))
	errs := make([]error, 0, len(elements))
	for i := range elements {
		t, subErr := ParseToken(elements[i])
		if subErr != nil {
			errs = append(errs, subErr)
			continue
		}
		tokens = append(tokens, t)
	}
	err = commonerrors.Join(errs...)
	if err != nil {
		tokens = nil
	}
	return
}
