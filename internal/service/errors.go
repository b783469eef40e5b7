package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")

	ErrCurrentPasswordRequired = errors.New("current password is required")
	ErrNewPasswordRequired     = errors.New("new password is required")
	ErrPasswordTooShort        = errors.New("new password must be at least 8 characters long")
	ErrPasswordUnchanged       = errors.New("new password must be different from current password")
	ErrPasswordTooWeak         = errors.New("password is too weak")

	ErrTitleRequired       = errors.New("title is required")
	ErrCompanyRequired     = errors.New("company is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDeadlineRequired    = errors.New("application deadline is required")
	ErrInvalidDeadline     = errors.New("application deadline is not a valid date")
	ErrInvalidJobType      = errors.New("job type is not in the allowed set")
	ErrInvalidCategory     = errors.New("category is not in the allowed set")
	ErrInvalidCareerLevel  = errors.New("career level is not in the allowed set")

	ErrContentRequired   = errors.New("content is required")
	ErrAuthorRequired    = errors.New("author is required")
	ErrInvalidDifficulty = errors.New("difficulty level is not in the allowed set")
	ErrInvalidStatus     = errors.New("status must be draft or published")

	ErrNameRequired    = errors.New("name is required")
	ErrMessageRequired = errors.New("message is required")
	ErrRelayFailed     = errors.New("failed to send message")

	ErrJobNotFound = errors.New("job not found")
	ErrTipNotFound = errors.New("tip not found")

	// ErrStorage hides storage-level failures from callers; the real
	// error is logged server-side only.
	ErrStorage = errors.New("a storage error occurred")
)

var validationErrors = []error{
	ErrEmailRequired, ErrPasswordRequired,
	ErrCurrentPasswordRequired, ErrNewPasswordRequired,
	ErrPasswordTooShort, ErrPasswordUnchanged, ErrPasswordTooWeak,
	ErrTitleRequired, ErrCompanyRequired, ErrDescriptionRequired,
	ErrDeadlineRequired, ErrInvalidDeadline, ErrInvalidJobType,
	ErrInvalidCategory, ErrInvalidCareerLevel,
	ErrContentRequired, ErrAuthorRequired, ErrInvalidDifficulty, ErrInvalidStatus,
	ErrNameRequired, ErrMessageRequired,
}

// IsValidation reports whether err is a field- or form-level validation
// failure, as opposed to an auth, not-found, or storage failure.
func IsValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the target entity does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrJobNotFound) || errors.Is(err, ErrTipNotFound)
}
