package quote

// ValidationError reports a missing field or structurally invalid input.
// Callers recover by re-prompting; it is never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingCustomerName = &ValidationError{Field: "customer_name", Message: "missing customer name"}
	ErrInvalidHonorific    = &ValidationError{Field: "honorific", Message: "invalid honorific"}
	ErrInvalidStatus       = &ValidationError{Field: "status", Message: "invalid status"}
	ErrNegativeTaxRate     = &ValidationError{Field: "tax_rate", Message: "tax rate must not be negative"}
	ErrNoItems             = &ValidationError{Field: "items", Message: "quote must have at least one item"}
	ErrLastItem            = &ValidationError{Field: "items", Message: "cannot remove the last item"}
	ErrItemNotFound        = &ValidationError{Field: "items", Message: "item not found"}
	ErrDuplicateItemID     = &ValidationError{Field: "items", Message: "duplicate item id"}
	ErrNegativeQuantity    = &ValidationError{Field: "quantity", Message: "quantity must not be negative"}
	ErrNegativeUnitPrice   = &ValidationError{Field: "unit_price", Message: "unit price must not be negative"}
	ErrAmountOutOfRange    = &ValidationError{Field: "items", Message: "amount too large"}
)
