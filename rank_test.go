package bevydoc_test

import (
	"testing"

	"github.com/seba2390/bevydoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bevydoc.MatchPriority
	}{
		{"bevy::prelude::Commands", bevydoc.PriorityPrelude},
		{"bevy::ecs::system::Commands", bevydoc.PriorityCore},
		{"bevy::transform::components::Transform", bevydoc.PriorityCore},
		{"bevy::gizmos::gizmos::Gizmos", bevydoc.PriorityOther},
		{"bevy", bevydoc.PriorityOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			c := bevydoc.Candidate{Path: tt.path}
			assert.Equal(t, tt.want, c.Priority())
		})
	}
}

func TestRankCandidates(t *testing.T) {
	t.Parallel()

	t.Run("prelude beats core beats other", func(t *testing.T) {
		t.Parallel()

		candidates := []bevydoc.Candidate{
			{Path: "bevy::gizmos::gizmos::Commands", Position: 0},
			{Path: "bevy::ecs::system::Commands", Position: 1},
			{Path: "bevy::prelude::Commands", Position: 2},
		}

		ranked := bevydoc.RankCandidates("Commands", candidates)

		require.Len(t, ranked, 3)
		assert.Equal(t, "bevy::prelude::Commands", ranked[0].Path)
		assert.Equal(t, "bevy::ecs::system::Commands", ranked[1].Path)
		assert.Equal(t, "bevy::gizmos::gizmos::Commands", ranked[2].Path)
	})

	t.Run("exact name match wins within a tier", func(t *testing.T) {
		t.Parallel()

		candidates := []bevydoc.Candidate{
			{Path: "bevy::prelude::TransformPlugin", Position: 0},
			{Path: "bevy::prelude::Transform", Position: 1},
		}

		ranked := bevydoc.RankCandidates("Transform", candidates)

		assert.Equal(t, "bevy::prelude::Transform", ranked[0].Path)
	})

	t.Run("exact name match beats a shorter path", func(t *testing.T) {
		t.Parallel()

		candidates := []bevydoc.Candidate{
			{Path: "bevy::ecs::QueryBuilder", Position: 0},
			{Path: "bevy::ecs::query::Query", Position: 1},
		}

		ranked := bevydoc.RankCandidates("Query", candidates)

		assert.Equal(t, "bevy::ecs::query::Query", ranked[0].Path)
	})

	t.Run("shorter path wins within a tier", func(t *testing.T) {
		t.Parallel()

		candidates := []bevydoc.Candidate{
			{Path: "bevy::ecs::system::query::QueryState", Position: 0},
			{Path: "bevy::ecs::query::QueryState", Position: 1},
		}

		ranked := bevydoc.RankCandidates("QueryState", candidates)

		assert.Equal(t, "bevy::ecs::query::QueryState", ranked[0].Path)
	})

	t.Run("document order breaks remaining ties", func(t *testing.T) {
		t.Parallel()

		candidates := []bevydoc.Candidate{
			{Path: "bevy::prelude::Res", Position: 0},
			{Path: "bevy::prelude::ResMut", Position: 1},
		}

		ranked := bevydoc.RankCandidates("resource", candidates)

		assert.Equal(t, "bevy::prelude::Res", ranked[0].Path)
		assert.Equal(t, "bevy::prelude::ResMut", ranked[1].Path)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()

		candidates := []bevydoc.Candidate{
			{Path: "bevy::gizmos::gizmos::Commands", Position: 0},
			{Path: "bevy::prelude::Commands", Position: 1},
		}

		_ = bevydoc.RankCandidates("Commands", candidates)

		assert.Equal(t, "bevy::gizmos::gizmos::Commands", candidates[0].Path)
	})
}

func TestCandidate_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Commands", bevydoc.Candidate{Path: "bevy::prelude::Commands"}.Name())
	assert.Equal(t, "bevy", bevydoc.Candidate{Path: "bevy"}.Name())
	assert.Equal(t, "bevy::prelude", bevydoc.Candidate{Path: "bevy::prelude::Commands"}.Module())
	assert.Equal(t, "", bevydoc.Candidate{Path: "bevy"}.Module())
}
