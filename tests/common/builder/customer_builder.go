//go:build unit

package builder

import (
	"time"

	domcustomer "hotel-desk/internal/domain/customer"
	reqdto "hotel-desk/internal/handler/dto/request"
)

type CustomerBuilder struct {
	Name        string
	ContactInfo string
	CreatedAt   time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:        "Alice",
		ContactInfo: "alice@example.com",
		CreatedAt:   time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() (*domcustomer.Customer, error) {
	return domcustomer.NewCustomer(b.Name, b.ContactInfo, b.CreatedAt)
}

func (b *CustomerBuilder) BuildCreateRequestDTO() reqdto.CreateCustomerRequest {
	return reqdto.CreateCustomerRequest{
		Name:        b.Name,
		ContactInfo: b.ContactInfo,
	}
}
