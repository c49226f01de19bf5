package command

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/placecraft/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their protocol names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("arg"); name != "" {
			return name
		}
		return strings.ToLower(f.Name)
	})
	if err := validate.RegisterValidation("damagetype", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDamageType(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
}

// validateArgs checks the struct tags of args and turns failures into one
// ErrInvalidInput message.
func validateArgs(args any) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "damagetype":
		return fmt.Sprintf("%s %q is not a damage type", field, fe.Value())
	default:
		return field + " is invalid"
	}
}

type moveArgs struct {
	Place int `arg:"place" validate:"min=0"`
}

type equipArgs struct {
	Inventory int `arg:"inventory" validate:"min=0"`
	Slot      int `arg:"slot" validate:"min=0"`
}

type swapArgs struct {
	First  int `arg:"first" validate:"min=0"`
	Second int `arg:"second" validate:"min=0"`
}

type reorderArgs struct {
	From int `arg:"from" validate:"min=0"`
	To   int `arg:"to" validate:"min=0"`
}

type craftArgs struct {
	Inventory  int      `arg:"inventory" validate:"min=0"`
	Sacrifices []string `arg:"sacrifices" validate:"max=64"`
}

type rerollArgs struct {
	Inventory  int      `arg:"inventory" validate:"min=0"`
	Modifier   int      `arg:"modifier" validate:"min=0"`
	Sacrifices []string `arg:"sacrifices" validate:"min=1,max=64"`
}

type resistanceArgs struct {
	Bound  string `arg:"bound" validate:"oneof=max min"`
	Damage string `arg:"damage" validate:"required,damagetype"`
	Amount uint64 `arg:"amount" validate:"min=1"`
}

type simultaneousArgs struct {
	Bound string `arg:"bound" validate:"oneof=max min"`
}
