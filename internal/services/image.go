package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"lingrow/internal/imaging"
	"lingrow/internal/logger"
	"lingrow/internal/models"
	"lingrow/internal/opencv/safe"

	"fyne.io/fyne/v2"
)

const imageComponent = "ImageService"

var ErrNoImage = errors.New("no image data")

// ImageService decodes mockups and keeps the window's MockupState current.
type ImageService struct {
	state  *models.MockupState
	logger logger.Logger
}

func NewImageService(state *models.MockupState, log logger.Logger) *ImageService {
	if log == nil {
		log = logger.Nop{}
	}
	return &ImageService{state: state, logger: log}
}

func (is *ImageService) State() *models.MockupState {
	return is.state
}

// LoadFile reads and decodes the image at path.
func (is *ImageService) LoadFile(ctx context.Context, path string) (*models.Mockup, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return is.load(ctx, path, data)
}

// LoadReader consumes a dialog reader and closes it.
func (is *ImageService) LoadReader(ctx context.Context, reader fyne.URIReadCloser) (*models.Mockup, error) {
	defer reader.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	path := reader.URI().Path()
	if path == "" {
		path = reader.URI().Name()
	}
	return is.load(ctx, path, data)
}

// load builds the mockup and its two thumbnails. The state is only replaced
// when every step succeeded.
func (is *ImageService) load(ctx context.Context, path string, data []byte) (*models.Mockup, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoImage)
	}

	startTime := time.Now()
	img, format, err := imaging.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	if err := safe.ValidateDimensions(bounds.Dx(), bounds.Dy(), "load"); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	logo, err := imaging.Thumbnail(img, imaging.LogoSize, imaging.LogoSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build logo thumbnail: %w", err)
	}
	card, err := imaging.Thumbnail(img, imaging.CardWidth, imaging.CardHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to build card thumbnail: %w", err)
	}

	mockup := &models.Mockup{
		Path:     path,
		Format:   format,
		Image:    img,
		Logo:     logo,
		Card:     card,
		LoadTime: time.Now(),
	}
	is.state.Set(mockup)

	is.logger.Info(imageComponent, "image loaded", map[string]interface{}{
		"path":     path,
		"format":   format,
		"width":    bounds.Dx(),
		"height":   bounds.Dy(),
		"duration": time.Since(startTime).String(),
	})
	return mockup, nil
}
