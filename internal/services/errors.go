package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error classes. Every error returned by a service wraps exactly one of them,
// so callers classify with errors.Is.
var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
	ErrInternal    = errors.New("internal error")
)

var (
	ErrUserNameRequired     = fmt.Errorf("%w: name is required", ErrValidation)
	ErrUserNameTaken        = fmt.Errorf("%w: user name already exists", ErrConflict)
	ErrUserIDRequired       = fmt.Errorf("%w: user_id is required", ErrValidation)
	ErrProjectNameRequired  = fmt.Errorf("%w: name is required", ErrValidation)
	ErrStartDateRequired    = fmt.Errorf("%w: start_date is required", ErrValidation)
	ErrDeadlineRequired     = fmt.Errorf("%w: deadline is required", ErrValidation)
	ErrTaskContentRequired  = fmt.Errorf("%w: every task needs content", ErrValidation)
	ErrStatusRequired       = fmt.Errorf("%w: status is required", ErrValidation)
	ErrCommentAuthorMissing = fmt.Errorf("%w: author is required", ErrValidation)
	ErrCommentTextMissing   = fmt.Errorf("%w: text is required", ErrValidation)
	ErrContentRequired      = fmt.Errorf("%w: content is required", ErrValidation)
	ErrPostTitleRequired    = fmt.Errorf("%w: title is required", ErrValidation)
	ErrPostContentRequired  = fmt.Errorf("%w: content is required", ErrValidation)
	ErrProjectNotFound      = fmt.Errorf("%w: project not found", ErrNotFound)
)

// NullFieldError reports a partial-update field that was sent as null but
// cannot be cleared.
func NullFieldError(field string) error {
	return fmt.Errorf("%w: %s cannot be null", ErrValidation, field)
}

// storageError wraps a repository failure. The underlying message is kept so
// it reaches the client.
func storageError(action string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: failed to %s: %v", ErrConflict, action, err)
	}
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, action, err)
}
