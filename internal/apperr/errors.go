package apperr

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// CalculationError is an expression that could not be evaluated. Err is the
// calcerr kind and Message its localized text.
type CalculationError struct {
	Expression string
	Message    string
	Err        error
}

func (e *CalculationError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

func NewCalculation(expression, message string, err error) *CalculationError {
	return &CalculationError{Expression: expression, Message: message, Err: err}
}
