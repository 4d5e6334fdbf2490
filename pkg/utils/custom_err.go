package utils

import "errors"

var (
	ErrSiteNotFound       = errors.New("site not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCatalogueNotFound  = errors.New("catalogue item not found")
	ErrPricingNotFound    = errors.New("pricing not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
