package request

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var platePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{0,15}$`)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("plate", validatePlate)
	})
	return err
}

func validatePlate(fl validator.FieldLevel) bool {
	return platePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
