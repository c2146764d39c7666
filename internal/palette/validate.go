package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	rrggbbPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
		// hexcolor also admits #RGBA and #RRGGBBAA, which nothing downstream renders
		_ = validateInst.RegisterValidation("rrggbb", func(fl validator.FieldLevel) bool {
			return rrggbbPattern.MatchString(fl.Field().String())
		})
	})
	return validateInst
}

// Validate checks a recommendation against the response schema
func Validate(r *Recommendation) error {
	if r == nil {
		return errors.New("recommendation is nil")
	}
	if err := validatorInstance().Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("%s failed %q validation", first.Namespace(), first.Tag())
		}
		return err
	}
	return nil
}

// NormalizeHex parses #RGB or #RRGGBB and returns upper-case #RRGGBB
func NormalizeHex(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return strings.ToUpper(c.Hex()), nil
}
