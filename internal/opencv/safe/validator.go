package safe

import (
	"errors"
	"fmt"
)

// MaxDimension bounds either side of an image handed to OpenCV.
const MaxDimension = 32768

var (
	ErrInvalidMat = errors.New("invalid mat")
	ErrDimensions = errors.New("invalid dimensions")
)

// ValidateMatForOperation rejects nil, closed and empty mats.
func ValidateMatForOperation(mat *Mat, operation string) error {
	switch {
	case mat == nil:
		return fmt.Errorf("%s: %w: nil", operation, ErrInvalidMat)
	case !mat.IsValid():
		return fmt.Errorf("%s: %w: closed", operation, ErrInvalidMat)
	case mat.Empty():
		return fmt.Errorf("%s: %w: empty", operation, ErrInvalidMat)
	}
	return nil
}

func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%s: %w: %dx%d", operation, ErrDimensions, width, height)
	}
	return nil
}
