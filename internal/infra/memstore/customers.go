package memstore

import (
	"context"

	"hotel-desk/internal/domain/customer"
	"hotel-desk/internal/infra"
)

// CustomerStore keys customers by name; the name is the directory identity.
type CustomerStore struct {
	byName map[string]*customer.Customer
}

func (cs *CustomerStore) Insert(_ context.Context, c *customer.Customer) error {
	if _, exists := cs.byName[c.Name()]; exists {
		return infra.WrapStoreErr("customer name already registered", nil, infra.KindConflict)
	}

	cs.byName[c.Name()] = c
	return nil
}

func (cs *CustomerStore) FindByName(_ context.Context, name string) (*customer.Customer, error) {
	c, ok := cs.byName[name]
	if !ok {
		return nil, infra.WrapStoreErr("customer not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (cs *CustomerStore) Delete(_ context.Context, name string) error {
	if _, ok := cs.byName[name]; !ok {
		return infra.WrapStoreErr("customer not found", nil, infra.KindNotFound)
	}

	delete(cs.byName, name)
	return nil
}
