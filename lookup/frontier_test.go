package lookup_test

import (
	"sync"
	"testing"

	"github.com/seba2390/bevydoc/lookup"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Claim(t *testing.T) {
	t.Parallel()

	t.Run("first claim succeeds, second fails", func(t *testing.T) {
		t.Parallel()

		f := lookup.NewFrontier(100, 0.01)

		url := "https://docs.rs/bevy/latest/bevy/prelude/struct.Commands.html"
		assert.True(t, f.Claim(url))
		assert.False(t, f.Claim(url))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("fragments are ignored for deduplication", func(t *testing.T) {
		t.Parallel()

		f := lookup.NewFrontier(100, 0.01)

		assert.True(t, f.Claim("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html"))
		assert.False(t, f.Claim("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html#examples"))
		assert.True(t, f.Seen("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html#impl"))
	})

	t.Run("seen does not claim", func(t *testing.T) {
		t.Parallel()

		f := lookup.NewFrontier(100, 0.01)

		assert.False(t, f.Seen("https://docs.rs/bevy/latest/bevy/prelude/struct.Res.html"))
		assert.True(t, f.Claim("https://docs.rs/bevy/latest/bevy/prelude/struct.Res.html"))
		assert.True(t, f.Seen("https://docs.rs/bevy/latest/bevy/prelude/struct.Res.html"))
	})

	t.Run("safe for concurrent claims", func(t *testing.T) {
		t.Parallel()

		f := lookup.NewFrontier(1000, 0.01)
		url := "https://docs.rs/bevy/latest/bevy/prelude/struct.Transform.html"

		var wg sync.WaitGroup
		claims := make(chan bool, 100)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				claims <- f.Claim(url)
			}()
		}
		wg.Wait()
		close(claims)

		succeeded := 0
		for ok := range claims {
			if ok {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)
	})
}
