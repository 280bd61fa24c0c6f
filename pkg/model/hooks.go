package model

import "fmt"

// ValidatorOf adapts a typed validation function into a ValidatorFunc. Nil
// values are accepted without calling fn, so optional fields left unset pass;
// values of another type fail with ErrTypeMismatch.
func ValidatorOf[T any](fn func(T) error) ValidatorFunc {
	return func(value any) error {
		if value == nil {
			return nil
		}
		typed, ok := value.(T)
		if !ok {
			var zero T
			return fmt.Errorf("%w: want %T, got %T", ErrTypeMismatch, zero, value)
		}
		return fn(typed)
	}
}

// CleanerOf adapts a typed cleaning function into a CleanerFunc. Values of
// another type are returned unchanged.
func CleanerOf[T any](fn func(T) T) CleanerFunc {
	return func(value any) any {
		typed, ok := value.(T)
		if !ok {
			return value
		}
		return fn(typed)
	}
}
