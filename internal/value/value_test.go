package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Null.Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Number(0).Truthy())
	assert.True(t, String("").Truthy())
}

func TestEqual(t *testing.T) {
	assert.True(t, Null.Equal(Null))
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(String("1")))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, Bool(true).Equal(Bool(false)))
}

func TestStringDisplay(t *testing.T) {
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "hello", String("hello").String())
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, "3", Number(3).String())
}
