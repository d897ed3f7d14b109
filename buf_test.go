package strcat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"nikand.dev/go/strcat/low"
)

func TestBufCat(t *testing.T) {
	t.Parallel()

	var b Buf

	r := b.Cat("Hello", " ", "World", "!")
	assert.Same(t, &b, r)
	assert.Equal(t, "Hello World!", b.String())

	b.Cat(" more")
	assert.Equal(t, "Hello World! more", b.String())
	assert.Equal(t, 17, b.Len())
}

func TestBufReuse(t *testing.T) {
	t.Parallel()

	b := Buf("Hello World!")

	p := low.Data(b)
	c := b.Cap()

	b.Reset()
	b.Cat("Hello")

	assert.Equal(t, "Hello", b.String())
	assert.Equal(t, p, low.Data(b))
	assert.Equal(t, c, b.Cap())
}

func TestBufGrow(t *testing.T) {
	t.Parallel()

	var b Buf
	b.Grow(16)

	b.Cat("foo", "bar")

	assert.Equal(t, "foobar", b.String())
	assert.GreaterOrEqual(t, b.Cap(), 16)
}

func TestBufWriter(t *testing.T) {
	t.Parallel()

	var b Buf

	fmt.Fprintf(&b, "%d %s", 1, "one")
	_, _ = b.WriteString(" two")
	_, _ = b.Write([]byte(" three"))

	assert.Equal(t, "1 one two three", string(b.Bytes()))
}
