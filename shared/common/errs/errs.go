package errs

import (
	"errors"
	"net/http"
)

type ErrorType string

const (
	ErrInputValidation  ErrorType = "input_validation_error"  // Invalid input (e.g., missing fields, format issues)
	ErrAuthentication   ErrorType = "authentication_error"    // Wrong or missing credentials
	ErrResourceNotFound ErrorType = "resource_not_found"      // Entity does not exist
	ErrConflict         ErrorType = "conflict"                // Duplicate data (e.g., unique constraint)
	ErrBusinessRule     ErrorType = "business_rule_violation" // Violates business rules
	ErrDataIntegrity    ErrorType = "data_integrity_error"    // Foreign key, check constraint
	ErrDatabaseFailure  ErrorType = "database_failure"        // Unexpected DB failure
	ErrOperationFailed  ErrorType = "operation_failed"        // General failure fallback
)

// AppError คือ error ที่ใช้ทั้งระบบ แยกประเภทด้วย Type เพื่อแปลงเป็น HTTP status ที่ middleware
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errType ErrorType, message string) *AppError {
	return &AppError{Type: errType, Message: message}
}

func Wrap(errType ErrorType, message string, err error) *AppError {
	return &AppError{Type: errType, Message: message, Err: err}
}

func InputValidationError(message string) *AppError {
	return New(ErrInputValidation, message)
}

func AuthenticationError(message string) *AppError {
	return New(ErrAuthentication, message)
}

func ResourceNotFoundError(message string) *AppError {
	return New(ErrResourceNotFound, message)
}

func ConflictError(message string) *AppError {
	return New(ErrConflict, message)
}

func BusinessRuleError(message string) *AppError {
	return New(ErrBusinessRule, message)
}

func DataIntegrityError(message string) *AppError {
	return New(ErrDataIntegrity, message)
}

func DatabaseFailureError(message string) *AppError {
	return New(ErrDatabaseFailure, message)
}

func OperationFailedError(message string) *AppError {
	return New(ErrOperationFailed, message)
}

// GetErrorType คืนประเภทของ error ถ้าไม่ใช่ AppError จะถือว่าเป็น ErrOperationFailed
func GetErrorType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrOperationFailed
}

func GetHTTPStatus(err error) int {
	switch GetErrorType(err) {
	case ErrInputValidation:
		return http.StatusBadRequest
	case ErrAuthentication:
		return http.StatusUnauthorized
	case ErrResourceNotFound:
		return http.StatusNotFound
	case ErrConflict, ErrDataIntegrity:
		return http.StatusConflict
	case ErrBusinessRule:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
