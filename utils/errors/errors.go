package errors

import "github.com/heytrack/heytrack-backend/constant"

type CustomError struct {
	errType constant.ErrorType
	details any
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Details returns the structured payload attached to the error, if any
// (e.g. the itemized shortfall list on an insufficient-stock error).
func (c CustomError) Details() any {
	return c.details
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithDetails attaches a serializable payload that transport
// includes in the error response body.
func SetCustomErrorWithDetails(errorType constant.ErrorType, details any) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}
