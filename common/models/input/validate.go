package input

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrConfiguration is the sentinel wrapped by every malformed or
// out-of-range configuration error (spec.md section 7,
// "ConfigurationError — malformed or out-of-range input; raised
// before any variable allocation").
var ErrConfiguration = errors.New("configuration error")

var structValidator = validator.New(validator.WithRequiredStructEnabled())
