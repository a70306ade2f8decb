package infinitescroll

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

// The size of the queued updates channel.
const updatesQueueSize = 100

// App is a minimal single-threaded event loop for running scroll views
// standalone: it owns the screen, serializes input events, queued updates,
// and animation steps, and redraws after each of them.
//
// Libraries embedding scroll views into a larger application will typically
// run their own loop instead and route [Controller.SetScheduleFunc] and
// [NewAnimator] through it.
type App struct {
	sync.RWMutex

	// The application's screen. Apart from Run(), this variable should never
	// be set directly.
	screen tcell.Screen

	// The root primitive to be seen on the screen.
	root Primitive

	events  chan tcell.Event
	updates chan func()

	// refresh forces a periodic redraw so time-driven visuals (e.g. the
	// spinner) keep moving between input events. Zero disables it.
	refresh time.Duration

	lastMouseX, lastMouseY int
	lastButtons            tcell.ButtonMask
}

// NewApp creates and returns a new application.
func NewApp() *App {
	return &App{
		updates: make(chan func(), updatesQueueSize),
	}
}

// SetScreen sets the application's screen.
func (a *App) SetScreen(screen tcell.Screen) *App {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
	}
	return a
}

// SetRoot sets the root primitive for this application. This function must be
// called at least once or nothing will be displayed when the application
// starts.
func (a *App) SetRoot(root Primitive) *App {
	a.Lock()
	a.root = root
	a.Unlock()
	if root != nil {
		root.Focus()
	}
	return a
}

// SetRefreshInterval enables a periodic redraw at the given interval. Zero
// disables it.
func (a *App) SetRefreshInterval(interval time.Duration) *App {
	a.Lock()
	a.refresh = interval
	a.Unlock()
	return a
}

// Post queues fn for execution on the event loop. It never blocks the loop:
// the queue is buffered and Post may be called from any goroutine. The screen
// is redrawn after fn runs.
func (a *App) Post(fn func()) {
	a.updates <- fn
}

// QueueUpdate is an alias for Post kept for symmetry with callers that update
// primitives from worker goroutines.
func (a *App) QueueUpdate(fn func()) {
	a.Post(fn)
}

// After invokes fn on the event loop once the delay has elapsed. It satisfies
// the schedule contract of [Controller.SetScheduleFunc].
func (a *App) After(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		a.Post(fn)
	})
}

// Run starts the application and thus the event loop. This function returns
// when [App.Stop] was called.
func (a *App) Run() error {
	a.Lock()

	// Make a screen if there is none yet.
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	refresh := a.refresh
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	a.Lock()
	a.events = screen.EventQ()
	a.Unlock()

	var refreshC <-chan time.Time
	if refresh > 0 {
		ticker := time.NewTicker(refresh)
		defer ticker.Stop()
		refreshC = ticker.C
	}

	var appErr error
EventLoop:
	for {
		select {
		case event := <-a.events:
			if event == nil {
				break EventLoop
			}

			switch event := event.(type) {
			case *tcell.EventKey:
				if event.Key() == tcell.KeyCtrlC {
					a.Stop()
					break EventLoop
				}
				a.RLock()
				root := a.root
				a.RUnlock()
				if root != nil && root.InputHandler(event) {
					a.draw()
				}
			case *tcell.EventMouse:
				if a.fireMouseActions(event) {
					a.draw()
				}
			case *tcell.EventResize:
				a.Lock()
				if a.screen != nil {
					a.screen.Clear()
				}
				a.Unlock()
				a.draw()
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		case update := <-a.updates:
			update()
			a.draw()

		case <-refreshC:
			a.draw()
		}
	}

	return appErr
}

// fireMouseActions derives mouse actions from the event and forwards them to
// the root primitive.
func (a *App) fireMouseActions(event *tcell.EventMouse) bool {
	a.RLock()
	root := a.root
	a.RUnlock()
	if root == nil {
		return false
	}

	handled := false
	fire := func(action MouseAction) {
		if root.MouseHandler(action, event) {
			handled = true
		}
	}

	x, y := event.Position()
	buttons := event.Buttons()
	buttonChanges := buttons ^ a.lastButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	if buttonChanges&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			fire(MouseLeftDown)
		} else {
			fire(MouseLeftUp)
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight}} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	a.lastButtons = buttons
	return handled
}

// Stop stops the application, causing Run() to return.
func (a *App) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
}

// draw renders the root primitive and syncs the screen buffer.
func (a *App) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	root.Draw(screen)
	screen.Show()
}
