package request

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	ContactInfo string `json:"contact_info" binding:"required,max=255"`
}
