package application

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrEmailNotConfirmed        = errors.New("email address has not been confirmed")
	ErrMissingCredentials       = errors.New("email and password are required")
	ErrEmailTaken               = errors.New("an account with this email already exists")
	ErrInvalidConfirmationToken = errors.New("invalid or expired confirmation token")
	ErrNotAdmin                 = errors.New("account is not registered as an administrator")
	ErrAccountNotFound          = errors.New("account not found")

	ErrFormNotFound          = errors.New("form not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrFormTitleRequired     = errors.New("form title is required")
	ErrQuestionTitleRequired = errors.New("question title is required")
	ErrInvalidQuestionType   = errors.New("invalid question type")
)
