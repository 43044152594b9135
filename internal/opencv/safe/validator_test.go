package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(128, 128, "icon"))
	assert.Error(t, ValidateDimensions(0, 10, "icon"))
	assert.Error(t, ValidateDimensions(10, -1, "icon"))
	assert.Error(t, ValidateDimensions(MaxDimension+1, 10, "icon"))
}

func TestValidateNilMat(t *testing.T) {
	assert.Error(t, ValidateMatForOperation(nil, "resize"))
}

func TestMatLifecycle(t *testing.T) {
	m, err := NewMat(4, 6, gocv.MatTypeCV8UC1)
	if err != nil {
		t.Skipf("OpenCV unavailable: %v", err)
	}
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 6, m.Cols())

	m.Close()
	m.Close()
	assert.False(t, m.IsValid())
	assert.True(t, m.Empty())
	assert.Error(t, ValidateMatForOperation(m, "resize"))
}

func TestValidateSentinels(t *testing.T) {
	assert.ErrorIs(t, ValidateDimensions(0, 0, "load"), ErrDimensions)
	assert.ErrorIs(t, ValidateMatForOperation(nil, "write"), ErrInvalidMat)
}
