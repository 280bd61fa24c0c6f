package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

func TestValidatorOf(t *testing.T) {
	tooLong := errors.New("too long")
	validate := model.ValidatorOf(func(value string) error {
		if len(value) > 3 {
			return tooLong
		}
		return nil
	})

	assert.NoError(t, validate(nil))
	assert.NoError(t, validate("abc"))
	assert.ErrorIs(t, validate("abcd"), tooLong)

	err := validate(42)
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "got int")
}

func TestCleanerOf(t *testing.T) {
	clean := model.CleanerOf(strings.ToUpper)

	assert.Equal(t, "ABC", clean("abc"))
	assert.Equal(t, 42, clean(42))
	assert.Nil(t, clean(nil))
}

func TestIsEmptyExported(t *testing.T) {
	assert.True(t, model.IsEmpty(""))
	assert.True(t, model.IsEmpty(model.NewRecord(0)))
	assert.False(t, model.IsEmpty("x"))
}
