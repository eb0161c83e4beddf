package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
	assert.True(t, Any(nil, ErrInvalid, nil))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestNew(t *testing.T) {
	reason := faker.Sentence()
	err := New(ErrParse, reason)
	assert.True(t, Any(err, ErrParse))
	assert.Contains(t, err.Error(), reason)
	assert.Equal(t, ErrParse, New(ErrParse, " "))
	assert.True(t, None(New(nil, reason), ErrParse, ErrMisconfigured))

	err = Newf(ErrMisconfigured, "missing %v", "combiner")
	assert.True(t, Any(err, ErrMisconfigured))
	assert.Equal(t, "misconfigured: missing combiner", err.Error())
}

func TestWrapError(t *testing.T) {
	original := errors.New(faker.Word())
	err := WrapError(ErrParse, original, "token #2")
	assert.True(t, Any(err, ErrParse))
	assert.True(t, errors.Is(err, original))
	assert.True(t, CorrespondTo(err, "token #2"))

	err = WrapErrorf(ErrUnexpected, original, "item %d", 5)
	assert.True(t, Any(err, ErrUnexpected))
	assert.True(t, errors.Is(err, original))

	assert.True(t, Any(WrapError(ErrInvalid, nil, faker.Word()), ErrInvalid))
	assert.Equal(t, original, WrapError(nil, original, ""))
	assert.True(t, errors.Is(WrapError(ErrInvalid, original, ""), original))
}

func TestIgnore(t *testing.T) {
	assert.NoError(t, Ignore(ErrEOF, ErrEOF))
	assert.NoError(t, Ignore(fmt.Errorf("wrapped %w", ErrEOF), ErrEOF))
	assert.Equal(t, ErrInvalid, Ignore(ErrInvalid, ErrEOF))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(errors.New("  ")))
	assert.False(t, IsEmpty(ErrUndefined))
}

func TestErrFromContext(t *testing.T) {
	assert.NoError(t, ErrFromContext(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.True(t, Any(ErrFromContext(ctx), ErrCancelled))
	ctx, cancel = context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	assert.True(t, Any(ErrFromContext(ctx), ErrTimeout))
}

func TestUndefined(t *testing.T) {
	name := faker.Word()
	assert.True(t, Any(UndefinedVariable(name), ErrUndefined))
	assert.True(t, CorrespondTo(UndefinedParameter(name), name))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join())
	assert.NoError(t, Join(nil, nil))
	err := Join(nil, ErrParse, New(ErrInvalid, faker.Word()))
	assert.Error(t, err)
	assert.True(t, Any(err, ErrParse))
	assert.True(t, Any(err, ErrInvalid))
	assert.False(t, Any(err, ErrMisconfigured))
}
