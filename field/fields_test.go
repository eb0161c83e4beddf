package field

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestOptionalInt(t *testing.T) {
	assert.Equal(t, 76, OptionalInt(nil, 76))
	assert.Equal(t, 3, OptionalInt(ToOptionalInt(3), 76))
	assert.Equal(t, 0, OptionalInt(ToOptionalInt(0), 76))
}

func TestOptionalString(t *testing.T) {
	def := faker.Word()
	value := faker.Sentence()
	assert.Equal(t, def, OptionalString(nil, def))
	assert.Equal(t, value, OptionalString(ToOptionalString(value), def))
}

func TestOptionalGeneric(t *testing.T) {
	type shop struct{ name string }
	s := shop{name: faker.Name()}
	ptr := ToOptional(s)
	s.name = "changed"
	assert.NotEqual(t, s, *ptr)
	assert.Equal(t, shop{name: "default"}, Optional[shop](nil, shop{name: "default"}))
}
