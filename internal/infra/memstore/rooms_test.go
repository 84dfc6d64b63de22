//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"hotel-desk/internal/infra"
	"hotel-desk/internal/infra/memstore"
	"hotel-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRoom(t *testing.T, store *memstore.Store, number int, roomType string) {
	t.Helper()
	rm, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.Number = number
		b.RoomType = roomType
	}).BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.Rooms().Insert(context.Background(), rm))
}

func TestRoomStore_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("insert and find", func(t *testing.T) {
		store := memstore.New()
		addRoom(t, store, 101, "Single")

		found, err := store.Rooms().FindByNumber(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, 101, found.Number())
		assert.Equal(t, "Single", found.Type())
	})

	t.Run("duplicate number conflicts", func(t *testing.T) {
		store := memstore.New()
		addRoom(t, store, 101, "Single")

		rm, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Number = 101
			b.RoomType = "Double"
		}).BuildDomain()
		require.NoError(t, err)

		err = store.Rooms().Insert(ctx, rm)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("find missing room", func(t *testing.T) {
		store := memstore.New()

		_, err := store.Rooms().FindByNumber(ctx, 999)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes room", func(t *testing.T) {
		store := memstore.New()
		addRoom(t, store, 101, "Single")

		require.NoError(t, store.Rooms().Delete(ctx, 101))

		_, err := store.Rooms().FindByNumber(ctx, 101)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete missing room", func(t *testing.T) {
		store := memstore.New()

		err := store.Rooms().Delete(ctx, 101)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("deleted number can be reused", func(t *testing.T) {
		store := memstore.New()
		addRoom(t, store, 101, "Single")
		require.NoError(t, store.Rooms().Delete(ctx, 101))

		addRoom(t, store, 101, "Double")

		found, err := store.Rooms().FindByNumber(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, "Double", found.Type())
	})
}

func TestReads_AvailableRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("listing follows registry order", func(t *testing.T) {
		store := memstore.New()
		addRoom(t, store, 300, "Suite")
		addRoom(t, store, 101, "Single")
		addRoom(t, store, 205, "Double")

		snaps, err := store.Reads().AvailableRooms(ctx)
		require.NoError(t, err)
		require.Len(t, snaps, 3)
		assert.Equal(t, 300, snaps[0].Number)
		assert.Equal(t, 101, snaps[1].Number)
		assert.Equal(t, 205, snaps[2].Number)
	})

	t.Run("occupied rooms are filtered out", func(t *testing.T) {
		store := memstore.New()
		addRoom(t, store, 101, "Single")
		addRoom(t, store, 102, "Single")

		rm, err := store.Rooms().FindByNumber(ctx, 101)
		require.NoError(t, err)
		require.NoError(t, rm.Occupy())

		snaps, err := store.Reads().AvailableRooms(ctx)
		require.NoError(t, err)
		require.Len(t, snaps, 1)
		assert.Equal(t, 102, snaps[0].Number)
	})

	t.Run("empty store lists nothing", func(t *testing.T) {
		store := memstore.New()

		snaps, err := store.Reads().AvailableRooms(ctx)
		require.NoError(t, err)
		assert.Empty(t, snaps)
	})
}
