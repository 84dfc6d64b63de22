package memstore

import (
	"context"

	"hotel-desk/internal/domain/room"
	"hotel-desk/internal/infra"
)

// RoomStore keys rooms by number and keeps registry insertion order for
// listings.
type RoomStore struct {
	byNumber map[int]*room.Room
	order    []int
}

func (rs *RoomStore) Insert(_ context.Context, r *room.Room) error {
	if _, exists := rs.byNumber[r.Number()]; exists {
		return infra.WrapStoreErr("room number already registered", nil, infra.KindConflict)
	}

	rs.byNumber[r.Number()] = r
	rs.order = append(rs.order, r.Number())
	return nil
}

func (rs *RoomStore) FindByNumber(_ context.Context, number int) (*room.Room, error) {
	r, ok := rs.byNumber[number]
	if !ok {
		return nil, infra.WrapStoreErr("room not found", nil, infra.KindNotFound)
	}
	return r, nil
}

func (rs *RoomStore) Delete(_ context.Context, number int) error {
	if _, ok := rs.byNumber[number]; !ok {
		return infra.WrapStoreErr("room not found", nil, infra.KindNotFound)
	}

	delete(rs.byNumber, number)
	for i, n := range rs.order {
		if n == number {
			rs.order = append(rs.order[:i], rs.order[i+1:]...)
			break
		}
	}
	return nil
}

// listAvailable walks in registry order; read-only.
func (rs *RoomStore) listAvailable() []*room.Room {
	var result []*room.Room
	for _, n := range rs.order {
		if r := rs.byNumber[n]; r.IsAvailable() {
			result = append(result, r)
		}
	}
	return result
}
