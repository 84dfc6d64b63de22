package memstore

import (
	"context"
	"sort"

	"hotel-desk/internal/domain/billing"
	"hotel-desk/internal/infra"
)

// BillingStore holds the rate table and one invoice per booking id.
type BillingStore struct {
	rates    map[string]billing.Rate
	invoices map[string]*billing.Invoice
}

func (bl *BillingStore) UpsertRate(_ context.Context, rate billing.Rate) error {
	bl.rates[rate.RoomType()] = rate
	return nil
}

func (bl *BillingStore) RateByType(_ context.Context, roomType string) (billing.Rate, error) {
	rate, ok := bl.rates[roomType]
	if !ok {
		return billing.Rate{}, infra.WrapStoreErr("room rate not found", nil, infra.KindNotFound)
	}
	return rate, nil
}

// SaveInvoice overwrites any prior invoice for the same booking id.
func (bl *BillingStore) SaveInvoice(_ context.Context, inv *billing.Invoice) error {
	bl.invoices[inv.BookingID()] = inv
	return nil
}

func (bl *BillingStore) InvoiceByBookingID(_ context.Context, bookingID string) (*billing.Invoice, error) {
	inv, ok := bl.invoices[bookingID]
	if !ok {
		return nil, infra.WrapStoreErr("invoice not found", nil, infra.KindNotFound)
	}
	return inv, nil
}

func (bl *BillingStore) allRates() []billing.Rate {
	types := make([]string, 0, len(bl.rates))
	for t := range bl.rates {
		types = append(types, t)
	}
	sort.Strings(types)

	result := make([]billing.Rate, 0, len(types))
	for _, t := range types {
		result = append(result, bl.rates[t])
	}
	return result
}
