package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

// ErrInvalid is wrapped by every failure produced in this package.
var ErrInvalid = errors.New("validation: invalid value")

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
	})
	return engine
}

// Tag checks values against a go-playground/validator tag expression such as
// "email" or "min=3,max=20". Nil values pass so optional fields can stay
// unset. A tag that does not apply to the value's type fails with
// model.ErrTypeMismatch instead of panicking.
func Tag(tag string) model.ValidatorFunc {
	return func(value any) (err error) {
		if value == nil {
			return nil
		}
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %w: %q does not apply to %T: %v", ErrInvalid, model.ErrTypeMismatch, tag, value, r)
			}
		}()
		if err := validate().Var(value, tag); err != nil {
			return describe(err)
		}
		return nil
	}
}

func describe(err error) error {
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	failure := failures[0]
	if failure.Param() != "" {
		return fmt.Errorf("%w: failed %q check (%s)", ErrInvalid, failure.Tag(), failure.Param())
	}
	return fmt.Errorf("%w: failed %q check", ErrInvalid, failure.Tag())
}

// Email accepts RFC 5322 addresses.
func Email() model.ValidatorFunc { return Tag("email") }

// URL accepts absolute URLs.
func URL() model.ValidatorFunc { return Tag("url") }

// UUID accepts RFC 4122 UUID strings.
func UUID() model.ValidatorFunc { return Tag("uuid") }

// MinLength requires strings to hold at least n characters and collections at
// least n items.
func MinLength(n int) model.ValidatorFunc { return Tag("min=" + strconv.Itoa(n)) }

// MaxLength caps strings at n characters and collections at n items.
func MaxLength(n int) model.ValidatorFunc { return Tag("max=" + strconv.Itoa(n)) }

// OneOf restricts strings and numbers to the listed values.
func OneOf(values ...string) model.ValidatorFunc {
	quoted := make([]string, len(values))
	for i, value := range values {
		if strings.ContainsAny(value, " \t") {
			value = "'" + value + "'"
		}
		quoted[i] = value
	}
	return Tag("oneof=" + strings.Join(quoted, " "))
}

// Match requires string values to match pattern. It panics if pattern does
// not compile.
func Match(pattern string) model.ValidatorFunc {
	re := regexp.MustCompile(pattern)
	return model.ValidatorOf(func(value string) error {
		if !re.MatchString(value) {
			return fmt.Errorf("%w: does not match %s", ErrInvalid, pattern)
		}
		return nil
	})
}

// All runs validators in order and returns the first failure.
func All(validators ...model.ValidatorFunc) model.ValidatorFunc {
	return func(value any) error {
		for _, fn := range validators {
			if fn == nil {
				continue
			}
			if err := fn(value); err != nil {
				return err
			}
		}
		return nil
	}
}

type validatable interface {
	Validate() error
}

// Nested validates nested models. Values with a Validate method are checked
// directly; slices and arrays are checked element by element and every
// failing index is reported. Other values pass.
func Nested() model.ValidatorFunc {
	return func(value any) error {
		if value == nil {
			return nil
		}
		if v, ok := value.(validatable); ok {
			if isNilPointer(value) {
				return nil
			}
			return v.Validate()
		}

		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil
		}
		var errs error
		for i := 0; i < rv.Len(); i++ {
			element := rv.Index(i).Interface()
			item, ok := element.(validatable)
			if !ok || isNilPointer(element) {
				continue
			}
			if err := item.Validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("[%d]: %w", i, err))
			}
		}
		return errs
	}
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
