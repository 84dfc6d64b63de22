// Package memstore holds the five stateful collections of the desk service
// in process memory. State is transient per process run.
//
// The sub-stores perform no locking of their own: all access goes through
// the unit of work in internal/infra/uow, which serializes workflows on the
// store's single lock.
package memstore

import (
	"sync"

	"hotel-desk/internal/domain/billing"
	"hotel-desk/internal/domain/booking"
	"hotel-desk/internal/domain/customer"
	"hotel-desk/internal/domain/room"
)

type Store struct {
	mu sync.RWMutex

	rooms     *RoomStore
	bookings  *BookingStore
	customers *CustomerStore
	billing   *BillingStore
	waitlist  *Waitlist
}

func New() *Store {
	return &Store{
		rooms: &RoomStore{
			byNumber: make(map[int]*room.Room),
		},
		bookings: &BookingStore{
			byID: make(map[string]*booking.Booking),
		},
		customers: &CustomerStore{
			byName: make(map[string]*customer.Customer),
		},
		billing: &BillingStore{
			rates:    make(map[string]billing.Rate),
			invoices: make(map[string]*billing.Invoice),
		},
		waitlist: &Waitlist{},
	}
}

func (s *Store) Lock()    { s.mu.Lock() }
func (s *Store) Unlock()  { s.mu.Unlock() }
func (s *Store) RLock()   { s.mu.RLock() }
func (s *Store) RUnlock() { s.mu.RUnlock() }

func (s *Store) Rooms() *RoomStore         { return s.rooms }
func (s *Store) Bookings() *BookingStore   { return s.bookings }
func (s *Store) Customers() *CustomerStore { return s.customers }
func (s *Store) Billing() *BillingStore    { return s.billing }
func (s *Store) Waitlist() *Waitlist       { return s.waitlist }

func (s *Store) Reads() *Reads { return &Reads{store: s} }
