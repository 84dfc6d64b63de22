package errs

// Sentinel errors shared by the usecase layers. Absence of an entity is a
// normal result here, never a fatal condition.
var (
	// Room errors
	ErrRoomNotFound    = New("room not found")
	ErrRoomUnavailable = New("room unavailable")
	ErrRoomOccupied    = New("room occupied")
	ErrDuplicateRoom   = New("duplicate room number")

	// Booking errors
	ErrBookingNotFound  = New("booking not found")
	ErrDuplicateBooking = New("duplicate booking id")

	// Customer errors
	ErrCustomerNotFound  = New("customer not found")
	ErrDuplicateCustomer = New("duplicate customer name")

	// Billing errors
	ErrInvoiceNotFound = New("invoice not found")
	ErrRateNotFound    = New("room rate not found")

	// Waitlist errors
	ErrQueueEmpty = New("no reservations to process")

	// Validation errors
	ErrDomainValidation = New("domain validation error")
)
