package deferred

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testContext(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestDeferred(t *testing.T) {
	t.Run("Resolved", func(t *testing.T) {
		d := Resolved(42)
		require.True(t, d.Settled())
		v, err := d.Result()
		require.NoError(t, err)
		require.Equal(t, 42, v)
	})

	t.Run("Rejected", func(t *testing.T) {
		d := Rejected[string](errBoom)
		require.True(t, d.Settled())
		require.ErrorIs(t, d.Err(), errBoom)
	})

	t.Run("SettlesOnce", func(t *testing.T) {
		d, settle := New[int]()
		require.False(t, d.Settled())
		settle(1, nil)
		settle(2, errBoom)
		v, err := d.Await(testContext(t))
		require.NoError(t, err)
		require.Equal(t, 1, v)
	})

	t.Run("Go", func(t *testing.T) {
		d := Go(testContext(t), func(context.Context) (string, error) { return "done", nil })
		v, err := d.Await(testContext(t))
		require.NoError(t, err)
		require.Equal(t, "done", v)
	})

	t.Run("AwaitCancelled", func(t *testing.T) {
		d, _ := New[int]()
		c, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := d.Await(c)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCombinators(t *testing.T) {
	t.Run("ThenSynchronous", func(t *testing.T) {
		d := Then(Resolved(2), func(v int) (int, error) { return v * 3, nil })
		require.True(t, d.Settled())
		v, err := d.Result()
		require.NoError(t, err)
		require.Equal(t, 6, v)
	})

	t.Run("ThenAsynchronous", func(t *testing.T) {
		src, settle := New[int]()
		d := Then(src, func(v int) (string, error) {
			if v < 0 {
				return "", errBoom
			}
			return "ok", nil
		})
		require.False(t, d.Settled())
		settle(-1, nil)
		_, err := d.Await(testContext(t))
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("ErrorsPassThrough", func(t *testing.T) {
		called := false
		d := Then(Rejected[int](errBoom), func(int) (int, error) {
			called = true
			return 0, nil
		})
		require.ErrorIs(t, d.Err(), errBoom)
		require.False(t, called)
	})

	t.Run("Chain", func(t *testing.T) {
		src, settle := New[int]()
		d := Chain(src, func(v int) *Deferred[int] {
			return Go(context.Background(), func(context.Context) (int, error) { return v + 1, nil })
		})
		settle(9, nil)
		v, err := d.Await(testContext(t))
		require.NoError(t, err)
		require.Equal(t, 10, v)
	})

	t.Run("Catch", func(t *testing.T) {
		v, err := Catch(Rejected[int](errBoom), func(error) int { return -1 }).Result()
		require.NoError(t, err)
		require.Equal(t, -1, v)

		src, settle := New[int]()
		d := Catch(src, func(error) int { return -1 })
		settle(0, errBoom)
		v, err = d.Await(testContext(t))
		require.NoError(t, err)
		require.Equal(t, -1, v)
	})
}

func TestJoin(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, Join().Err())
	})

	t.Run("FirstErrorInOrder", func(t *testing.T) {
		first := errors.New("first")
		a, settleA := New[int]()
		b := Rejected[string](errBoom)
		j := Join(a, b)
		require.False(t, j.Settled())
		settleA(0, first)
		_, err := j.Await(testContext(t))
		require.ErrorIs(t, err, first)
	})

	t.Run("AlreadySettled", func(t *testing.T) {
		j := Join(Resolved(1), Resolved("x"))
		require.True(t, j.Settled())
		require.NoError(t, j.Err())
	})
}

func TestAll(t *testing.T) {
	t.Run("Ordered", func(t *testing.T) {
		ds := make([]*Deferred[int], 0, 5)
		for i := range 5 {
			ds = append(ds, Go(context.Background(), func(context.Context) (int, error) {
				time.Sleep(time.Duration(5-i) * time.Millisecond)
				return i, nil
			}))
		}
		out, err := All(testContext(t), ds)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2, 3, 4}, out)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		never, _ := New[int]()
		_, err := All(testContext(t), []*Deferred[int]{never, Rejected[int](errBoom)})
		require.ErrorIs(t, err, errBoom)
	})
}
