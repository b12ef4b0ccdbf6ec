package bloom_test

import (
	"fmt"
	"testing"

	"github.com/seba2390/bevydoc/bloom"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("add and test", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewURLFilter(1000, 0.01)

		assert.False(t, f.Test("https://docs.rs/bevy/latest/bevy/prelude/struct.Commands.html"))

		f.Add("https://docs.rs/bevy/latest/bevy/prelude/struct.Commands.html")

		assert.True(t, f.Test("https://docs.rs/bevy/latest/bevy/prelude/struct.Commands.html"))
		assert.False(t, f.Test("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html"))
	})

	t.Run("fragments identify the same item", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewURLFilter(1000, 0.01)

		f.Add("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html#examples")

		assert.True(t, f.Test("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html"))
		assert.True(t, f.Test("https://docs.rs/bevy/latest/bevy/prelude/struct.Query.html#impl-Default"))
	})

	t.Run("no false negatives at scale", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewURLFilter(10000, 0.01)

		urls := make([]string, 5000)
		for i := range urls {
			urls[i] = fmt.Sprintf("https://docs.rs/bevy/latest/bevy/mod%d/struct.Item%d.html", i%50, i)
			f.Add(urls[i])
		}

		for _, url := range urls {
			assert.True(t, f.Test(url))
		}
	})
}
