package controllers

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"time"

	"lingrow/internal/config"
	"lingrow/internal/logger"
	"lingrow/internal/models"
	"lingrow/internal/services"
	"lingrow/internal/store"
	"lingrow/internal/suggest"
	"lingrow/internal/views"

	"fyne.io/fyne/v2"
)

const (
	component   = "MainController"
	loadTimeout = 30 * time.Second
)

// MainController wires the views to the image and draft services.
type MainController struct {
	app    fyne.App
	cfg    *config.Config
	logger logger.Logger

	imageService *services.ImageService
	store        *store.Store

	mainView *views.MainView

	mu          sync.Mutex
	writeViews  map[*views.WriteView]struct{}
	watchCancel context.CancelFunc
	watchDone   chan struct{}
}

func NewMainController(app fyne.App, cfg *config.Config, imageService *services.ImageService, st *store.Store, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop{}
	}
	return &MainController{
		app:          app,
		cfg:          cfg,
		logger:       log,
		imageService: imageService,
		store:        st,
		writeViews:   make(map[*views.WriteView]struct{}),
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetLoadImageHandler(mc.LoadImage)
	mc.mainView.SetWriteHandler(func() { mc.OpenWrite() })
	mc.mainView.SetExploreHandler(mc.ShowExplore)
	mc.mainView.SetRecentHandler(mc.ShowRecent)
	mc.mainView.SetSignUpHandler(mc.SignUp)
	mc.mainView.SetAddFriendsHandler(mc.AddFriends)
}

// LoadImage asks for an image file and loads it in the background.
func (mc *MainController) LoadImage() {
	mc.mainView.ShowImageDialog(mc.cfg.AnyImageFile, func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError("file selection failed", err)
			return
		}
		if reader == nil {
			return
		}
		go mc.loadFromReader(reader)
	})
}

func (mc *MainController) loadFromReader(reader fyne.URIReadCloser) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	fyne.Do(func() { mc.mainView.UpdateStatus("Loading image...") })
	mockup, err := mc.imageService.LoadReader(ctx, reader)
	mc.finishLoad(mockup, err)
}

// LoadPath loads an image from disk. When optional is set a missing file is
// skipped without a dialog.
func (mc *MainController) LoadPath(path string, optional bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		mockup, err := mc.imageService.LoadFile(ctx, path)
		if optional && errors.Is(err, fs.ErrNotExist) {
			mc.logger.Debug(component, "default image not found", map[string]interface{}{"path": path})
			return
		}
		mc.finishLoad(mockup, err)
	}()
}

func (mc *MainController) finishLoad(mockup *models.Mockup, err error) {
	fyne.Do(func() {
		if err != nil {
			mc.mainView.UpdateStatus("Could not open image")
			mc.handleError("image load failed", err)
			return
		}
		mc.mainView.SetMockup(mockup)
		mc.mainView.UpdateStatus("Image loaded")
	})
}

// OpenWrite opens a new write window with its own draft state.
func (mc *MainController) OpenWrite() *views.WriteView {
	wv := views.NewWriteView(mc.app)
	drafts := services.NewDraftService(mc.store, models.NewDraftState(), mc.logger)

	wv.SetSuggestHandler(func(kind suggest.Kind, text string) {
		if preview, ok := drafts.Suggest(kind, text); ok {
			wv.SetPreview(preview.Text, preview.Changes)
		}
	})
	wv.SetSaveHandler(func(original, preview string) {
		title := mc.imageService.State().Title()
		if _, err := drafts.Save(title, original, preview); err != nil {
			mc.handleError("save failed", err)
			return
		}
		mc.mainView.UpdateStatus("Saved to " + mc.store.Path())
		mc.RefreshRecent()
	})

	mc.mu.Lock()
	mc.writeViews[wv] = struct{}{}
	mc.mu.Unlock()
	wv.SetOnClosed(func() {
		mc.mu.Lock()
		delete(mc.writeViews, wv)
		mc.mu.Unlock()
	})

	wv.Show()
	return wv
}

func (mc *MainController) ShowExplore() {
	mc.mainView.ShowInfo("Explore", "Explore cultural expressions")
}

func (mc *MainController) ShowRecent() {
	mc.mainView.ShowRecent(mc.recentRows())
}

// RefreshRecent redraws an open recent list from the store.
func (mc *MainController) RefreshRecent() {
	mc.mainView.RefreshRecent(mc.recentRows())
}

func (mc *MainController) recentRows() []views.RecentRow {
	return views.RecentRows(mc.store.Recent(mc.cfg.RecentLimit))
}

func (mc *MainController) SignUp(email, _ string) {
	mc.logger.Debug(component, "demo sign up", map[string]interface{}{"email_set": email != ""})
	mc.mainView.ShowInfo("Sign Up", "Account created (demo)")
}

func (mc *MainController) AddFriends() {
	mc.mainView.ShowInfo("Add friends", "Add friends (demo)")
}

// StartWatch refreshes the recent list whenever the store file changes on disk.
func (mc *MainController) StartWatch(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	mc.mu.Lock()
	mc.watchCancel = cancel
	mc.watchDone = done
	mc.mu.Unlock()

	go func() {
		defer close(done)
		err := mc.store.Watch(ctx, mc.cfg.Debounce, func() {
			fyne.Do(mc.RefreshRecent)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			mc.logger.Warning(component, "store watch stopped", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

// CloseWindows closes every open write window. Call it on the Fyne thread.
func (mc *MainController) CloseWindows() {
	mc.mu.Lock()
	open := make([]*views.WriteView, 0, len(mc.writeViews))
	for wv := range mc.writeViews {
		open = append(open, wv)
	}
	mc.mu.Unlock()

	for _, wv := range open {
		wv.Close()
	}
}

// Shutdown stops the store watcher and waits for it to exit.
func (mc *MainController) Shutdown(ctx context.Context) error {
	mc.mu.Lock()
	cancel, done := mc.watchCancel, mc.watchDone
	mc.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OpenWriteWindows reports how many write windows are open.
func (mc *MainController) OpenWriteWindows() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.writeViews)
}

func (mc *MainController) handleError(operation string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{"operation": operation})
	mc.mainView.ShowError(err)
}
