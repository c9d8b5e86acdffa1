package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/composable_go/shared/helper"
	"github.com/stretchr/testify/assert"
)

var errLookup = errors.New("lookup failed")

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return "seven", nil })
	assert.ErrorContains(t, err, "unexpected type: string")

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, errLookup })
	assert.ErrorIs(t, err, errLookup)
}

func TestMustGetTypedValue_Panics(t *testing.T) {
	assert.Panics(t, func() {
		helper.MustGetTypedValue[int](func() (any, error) { return nil, errLookup })
	})
	assert.NotPanics(t, func() {
		helper.MustGetTypedValue[string](func() (any, error) { return "ok", nil })
	})
}
