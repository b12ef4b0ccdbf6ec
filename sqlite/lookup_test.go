package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/seba2390/bevydoc"
	"github.com/seba2390/bevydoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLookup(keyword string) *bevydoc.Lookup {
	return &bevydoc.Lookup{
		Keyword:    keyword,
		URL:        "https://docs.rs/bevy/latest/bevy/transform/components/struct.Transform.html",
		ItemPath:   "bevy::transform::components::Transform",
		Kind:       bevydoc.KindStruct,
		Definition: "pub struct Transform {\n    pub translation: Vec3,\n    pub rotation: Quat,\n    pub scale: Vec3,\n}",
		Example:    "let transform = Transform::from_xyz(0.0, 0.0, 0.0);",
		Doc:        "Describe the position of an entity.",
	}
}

func TestLookupService_CreateLookup(t *testing.T) {
	t.Parallel()

	t.Run("creates lookup with generated fields", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		ctx := context.Background()

		l := newTestLookup("Transform")
		err := s.CreateLookup(ctx, l)
		require.NoError(t, err)

		assert.NotEmpty(t, l.ID)
		assert.NotEmpty(t, l.ContentHash)
		assert.False(t, l.FetchedAt.IsZero())

		got, err := s.FindLookupByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, l.Keyword, got.Keyword)
		assert.Equal(t, l.URL, got.URL)
		assert.Equal(t, l.ItemPath, got.ItemPath)
		assert.Equal(t, bevydoc.KindStruct, got.Kind)
		assert.Equal(t, l.Definition, got.Definition)
		assert.Equal(t, l.Example, got.Example)
		assert.Equal(t, l.Doc, got.Doc)
		assert.Equal(t, l.ContentHash, got.ContentHash)
	})

	t.Run("replaces cached entry for same keyword", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		ctx := context.Background()

		first := newTestLookup("Transform")
		require.NoError(t, s.CreateLookup(ctx, first))

		second := newTestLookup("Transform")
		second.Definition = "pub struct Transform { /* updated */ }"
		require.NoError(t, s.CreateLookup(ctx, second))

		got, err := s.FindLookupByKeyword(ctx, "Transform")
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)
		assert.Equal(t, second.Definition, got.Definition)

		lookups, err := s.FindLookups(ctx, bevydoc.LookupFilter{})
		require.NoError(t, err)
		assert.Len(t, lookups, 1)
	})

	t.Run("identical content yields identical hash", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		ctx := context.Background()

		a := newTestLookup("Transform")
		require.NoError(t, s.CreateLookup(ctx, a))

		b := newTestLookup("bevy::transform::components::Transform")
		require.NoError(t, s.CreateLookup(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)

		c := newTestLookup("Camera")
		c.Definition = "pub struct Camera { /* ... */ }"
		require.NoError(t, s.CreateLookup(ctx, c))
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})

	t.Run("validation error for missing keyword", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)

		l := newTestLookup("")
		err := s.CreateLookup(context.Background(), l)
		require.Error(t, err)
		assert.Equal(t, bevydoc.EINVALID, bevydoc.ErrorCode(err))
	})

	t.Run("validation error for missing definition", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)

		l := newTestLookup("Transform")
		l.Definition = ""
		err := s.CreateLookup(context.Background(), l)
		require.Error(t, err)
		assert.Equal(t, bevydoc.EINVALID, bevydoc.ErrorCode(err))
	})
}

func TestLookupService_FindLookupByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)

		_, err := s.FindLookupByID(context.Background(), "does-not-exist")
		require.Error(t, err)
		assert.Equal(t, bevydoc.ENOTFOUND, bevydoc.ErrorCode(err))
	})
}

func TestLookupService_FindLookupByKeyword(t *testing.T) {
	t.Parallel()

	t.Run("finds cached lookup", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		ctx := context.Background()

		l := newTestLookup("Transform")
		require.NoError(t, s.CreateLookup(ctx, l))

		got, err := s.FindLookupByKeyword(ctx, "Transform")
		require.NoError(t, err)
		assert.Equal(t, l.ID, got.ID)
	})

	t.Run("returns ENOTFOUND for unknown keyword", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)

		_, err := s.FindLookupByKeyword(context.Background(), "Nope")
		require.Error(t, err)
		assert.Equal(t, bevydoc.ENOTFOUND, bevydoc.ErrorCode(err))
	})
}

func TestLookupService_FindLookups(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, s *sqlite.LookupService) {
		t.Helper()
		ctx := context.Background()

		for _, kw := range []string{"Transform", "Camera", "App"} {
			l := newTestLookup(kw)
			l.ItemPath = "bevy::prelude::" + kw
			require.NoError(t, s.CreateLookup(ctx, l))
		}
	}

	t.Run("default sort is most recent first", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		ctx := context.Background()

		for _, kw := range []string{"Transform", "Camera", "App"} {
			l := newTestLookup(kw)
			require.NoError(t, s.CreateLookup(ctx, l))
			// fetched_at has second resolution in RFC 3339
			time.Sleep(1100 * time.Millisecond)
		}

		lookups, err := s.FindLookups(ctx, bevydoc.LookupFilter{})
		require.NoError(t, err)
		require.Len(t, lookups, 3)
		assert.Equal(t, "App", lookups[0].Keyword)
		assert.Equal(t, "Camera", lookups[1].Keyword)
		assert.Equal(t, "Transform", lookups[2].Keyword)
	})

	t.Run("sort by keyword", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		seed(t, s)

		lookups, err := s.FindLookups(context.Background(), bevydoc.LookupFilter{SortBy: bevydoc.SortByKeyword})
		require.NoError(t, err)
		require.Len(t, lookups, 3)
		assert.Equal(t, "App", lookups[0].Keyword)
		assert.Equal(t, "Camera", lookups[1].Keyword)
		assert.Equal(t, "Transform", lookups[2].Keyword)
	})

	t.Run("filter by keyword", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		seed(t, s)

		keyword := "Camera"
		lookups, err := s.FindLookups(context.Background(), bevydoc.LookupFilter{Keyword: &keyword})
		require.NoError(t, err)
		require.Len(t, lookups, 1)
		assert.Equal(t, "Camera", lookups[0].Keyword)
	})

	t.Run("filter by item path", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		seed(t, s)

		itemPath := "bevy::prelude::App"
		lookups, err := s.FindLookups(context.Background(), bevydoc.LookupFilter{ItemPath: &itemPath})
		require.NoError(t, err)
		require.Len(t, lookups, 1)
		assert.Equal(t, "App", lookups[0].Keyword)
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		seed(t, s)

		lookups, err := s.FindLookups(context.Background(), bevydoc.LookupFilter{
			SortBy: bevydoc.SortByKeyword,
			Limit:  1,
			Offset: 1,
		})
		require.NoError(t, err)
		require.Len(t, lookups, 1)
		assert.Equal(t, "Camera", lookups[0].Keyword)
	})

	t.Run("empty result for no matches", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)

		keyword := "Nope"
		lookups, err := s.FindLookups(context.Background(), bevydoc.LookupFilter{Keyword: &keyword})
		require.NoError(t, err)
		assert.Empty(t, lookups)
	})
}

func TestLookupService_DeleteLookup(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing lookup", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)
		ctx := context.Background()

		l := newTestLookup("Transform")
		require.NoError(t, s.CreateLookup(ctx, l))

		require.NoError(t, s.DeleteLookup(ctx, l.ID))

		_, err := s.FindLookupByID(ctx, l.ID)
		require.Error(t, err)
		assert.Equal(t, bevydoc.ENOTFOUND, bevydoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewLookupService(db)

		err := s.DeleteLookup(context.Background(), "does-not-exist")
		require.Error(t, err)
		assert.Equal(t, bevydoc.ENOTFOUND, bevydoc.ErrorCode(err))
	})
}
