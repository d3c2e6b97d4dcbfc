package coloring

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Params configures one model.
type Params struct {
	Method Method `yaml:"method" json:"method"`
	// K is the color budget.
	K int `yaml:"k" json:"k" validate:"min=1"`
	// R is the dynamic-coloring order.
	R int `yaml:"r" json:"r" validate:"min=0"`
	// Name labels the model; defaults to "Coloring".
	Name string `yaml:"name,omitempty" json:"name,omitempty" validate:"max=128"`
}

// DefaultModelName labels models built without a Name.
const DefaultModelName = "Coloring"

// Validate rejects unknown methods with ErrUnknownMethod and out-of-range
// numbers with a *ParamError.
func (p Params) Validate() error {
	if !p.Method.Valid() {
		return fmt.Errorf("coloring: method %q: %w", string(p.Method), ErrUnknownMethod)
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func (p Params) name() string {
	if p.Name == "" {
		return DefaultModelName
	}

	return p.Name
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "min":
		return &ParamError{Field: e.Field(), Reason: fmt.Sprintf("must be at least %s, got %v", e.Param(), e.Value())}
	case "max":
		return &ParamError{Field: e.Field(), Reason: fmt.Sprintf("must not exceed %s", e.Param())}
	default:
		return &ParamError{Field: e.Field(), Reason: fmt.Sprintf("validation failed (%s)", e.Tag())}
	}
}
