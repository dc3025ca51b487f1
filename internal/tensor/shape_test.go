package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glia-ml/glia/internal/tensor"
)

func TestShape_NumElements(t *testing.T) {
	assert.Equal(t, 6, tensor.Shape{2, 3}.NumElements())
	assert.Equal(t, 1, tensor.Shape{}.NumElements(), "scalar has one element")
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, tensor.Shape{1, 4}.Validate())
	assert.Error(t, tensor.Shape{2, 0}.Validate())
	assert.Error(t, tensor.Shape{-1}.Validate())
}

func TestShape_Equal(t *testing.T) {
	assert.True(t, tensor.Shape{2, 3}.Equal(tensor.Shape{2, 3}))
	assert.False(t, tensor.Shape{2, 3}.Equal(tensor.Shape{3, 2}))
	assert.False(t, tensor.Shape{2, 3}.Equal(tensor.Shape{2, 3, 1}))
}
