package globe

// FieldError is a field-keyed validation message. Engines report
// validation problems as values, never as panics or Go errors; a
// non-empty list blocks the calculation that was asked for and nothing
// else.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func requireField(errs []FieldError, field, value, message string) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: message})
	}
	return errs
}

func requireNonNegative(errs []FieldError, field string, value float64, message string) []FieldError {
	if value < 0 {
		return append(errs, FieldError{Field: field, Message: message})
	}
	return errs
}
