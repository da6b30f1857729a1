package generic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	t.Run("Generates", func(t *testing.T) {
		calls := 0
		p := NewPool(func() *int {
			calls++
			v := 7
			return &v
		})
		require.Equal(t, 7, *p.Get())
		require.GreaterOrEqual(t, calls, 1)
	})

	t.Run("ResetOnPut", func(t *testing.T) {
		p := NewResetPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)
		buf := p.Get()
		buf.WriteString("stale")
		p.Put(buf)
		require.Zero(t, buf.Len())
		require.Zero(t, p.Get().Len())
	})
}
