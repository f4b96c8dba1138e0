package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrClassNotFound       = errors.New("class not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrStructureNotFound   = errors.New("fee structure not found")
	ErrDuplicateStructure  = errors.New("fee structure already exists for this class")
	ErrBillNotFound        = errors.New("fee bill not found")
	ErrBillHasPayments     = errors.New("fee bill already has recorded payments")
	ErrInvalidPayment      = errors.New("amount must be greater than 0")
	ErrInvalidFeeItem      = errors.New("fee item is invalid")
	ErrInsufficientRole    = errors.New("insufficient role for this action")
	ErrArchiveUploadFailed = errors.New("report archive upload failed")
)
