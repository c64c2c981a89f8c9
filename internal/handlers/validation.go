package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// IdempotencyKeyHeader is the optional header that makes a transfer replay-safe.
const IdempotencyKeyHeader = "Idempotency-Key"

var (
	registerOnce sync.Once
	validate     *validator.Validate
)

// registerValidators adds custom tags to gin's validator engine. Safe to call
// more than once.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		validate = v
	})
}

// validateIdempotencyKey accepts an empty key (header absent) or up to 128
// printable ASCII characters.
func validateIdempotencyKey(key string) error {
	registerValidators()
	return validate.Var(key, "omitempty,max=128,printascii")
}
