package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullFloatCSV(t *testing.T) {
	t.Parallel()

	s, err := Float(2.5).MarshalCSV()
	assert.NoError(t, err)
	assert.Equal(t, "2.5", s)

	s, err = NoValue.MarshalCSV()
	assert.NoError(t, err)
	assert.Equal(t, "", s)

	var f NullFloat
	assert.NoError(t, f.UnmarshalCSV(""))
	assert.False(t, f.Valid)

	assert.NoError(t, f.UnmarshalCSV("10"))
	assert.True(t, f.Valid)
	assert.Equal(t, 10.0, f.Float64)
}

func TestNullFloatSQLValue(t *testing.T) {
	t.Parallel()

	v, err := Float(1.5).Value()
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = NoValue.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}
