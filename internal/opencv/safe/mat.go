package safe

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"
)

// Mat owns a gocv.Mat and makes Close idempotent. A finalizer releases the
// native memory if Close is never called.
type Mat struct {
	mat     gocv.Mat
	isValid int32
	mu      sync.RWMutex
}

func NewMat(rows, cols int, matType gocv.MatType) (*Mat, error) {
	if err := ValidateDimensions(cols, rows, "NewMat"); err != nil {
		return nil, err
	}
	return wrap(gocv.NewMatWithSize(rows, cols, matType))
}

// NewFilledMat creates a BGRA Mat of the given size filled with c.
func NewFilledMat(rows, cols int, c color.RGBA) (*Mat, error) {
	if err := ValidateDimensions(cols, rows, "NewFilledMat"); err != nil {
		return nil, err
	}
	s := gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), float64(c.A))
	return wrap(gocv.NewMatWithSizeFromScalar(s, rows, cols, gocv.MatTypeCV8UC4))
}

// FromImage converts img into a 4 channel Mat.
func FromImage(img image.Image) (*Mat, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	m, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("image to Mat: %w", err)
	}
	return wrap(m)
}

func wrap(m gocv.Mat) (*Mat, error) {
	if m.Empty() {
		m.Close()
		return nil, fmt.Errorf("failed to create Mat")
	}
	sm := &Mat{mat: m, isValid: 1}
	runtime.SetFinalizer(sm, (*Mat).finalize)
	return sm, nil
}

func (sm *Mat) IsValid() bool {
	return atomic.LoadInt32(&sm.isValid) == 1
}

func (sm *Mat) Empty() bool {
	return sm.query(func(m *gocv.Mat) int {
		if m.Empty() {
			return 1
		}
		return 0
	}, 1) == 1
}

func (sm *Mat) Rows() int { return sm.query((*gocv.Mat).Rows, 0) }

func (sm *Mat) Cols() int { return sm.query((*gocv.Mat).Cols, 0) }

func (sm *Mat) Channels() int { return sm.query((*gocv.Mat).Channels, 0) }

// query reads one property under the read lock, or returns closed once the
// Mat has been released.
func (sm *Mat) query(fn func(*gocv.Mat) int, closed int) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return closed
	}
	return fn(&sm.mat)
}

// Draw runs fn with exclusive access to the underlying Mat.
func (sm *Mat) Draw(fn func(m *gocv.Mat)) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.IsValid() {
		return fmt.Errorf("Mat is invalid")
	}
	fn(&sm.mat)
	return nil
}

// Resize returns a new Mat scaled to width x height.
func (sm *Mat) Resize(width, height int, interpolation gocv.InterpolationFlags) (*Mat, error) {
	if err := ValidateMatForOperation(sm, "resize"); err != nil {
		return nil, err
	}
	if err := ValidateDimensions(width, height, "resize"); err != nil {
		return nil, err
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	dst := gocv.NewMat()
	gocv.Resize(sm.mat, &dst, image.Point{X: width, Y: height}, 0, 0, interpolation)
	return wrap(dst)
}

func (sm *Mat) ToImage() (image.Image, error) {
	if err := ValidateMatForOperation(sm, "Mat to image conversion"); err != nil {
		return nil, err
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.mat.ToImage()
}

// Write encodes the Mat to path; the extension selects the format.
func (sm *Mat) Write(path string) error {
	if err := ValidateMatForOperation(sm, "write"); err != nil {
		return err
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if !gocv.IMWrite(path, sm.mat) {
		return fmt.Errorf("failed to write image %s", path)
	}
	return nil
}

func (sm *Mat) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if atomic.CompareAndSwapInt32(&sm.isValid, 1, 0) {
		sm.mat.Close()
		runtime.SetFinalizer(sm, nil)
	}
}

func (sm *Mat) finalize() {
	if sm.IsValid() {
		sm.Close()
	}
}
