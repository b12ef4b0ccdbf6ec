package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is how many pages a browser renders before it is replaced.
const DefaultMaxPages = 75

// Session owns the headless Chrome instance shared by all fetches in a run.
// Chrome's memory footprint grows with every rendered page and never fully
// comes back down, which matters for batch runs that walk hundreds of docs.rs
// pages. The browser is therefore torn down and relaunched after a fixed
// number of pages.
//
// Session is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int64
	maxPages int64
	closed   bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMaxPages sets how many pages the browser renders before being replaced.
// Defaults to DefaultMaxPages.
func WithMaxPages(n int64) SessionOption {
	return func(s *Session) {
		s.maxPages = n
	}
}

// NewSession launches a headless Chrome browser. Close must be called when
// the Session is no longer needed.
func NewSession(opts ...SessionOption) (*Session, error) {
	s := &Session{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.launch(); err != nil {
		return nil, err
	}

	return s, nil
}

// Browser returns the current browser, replacing it first if the page count
// has reached the threshold. Callers report each rendered page with
// PageRendered.
func (s *Session) Browser() *rod.Browser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pages >= s.maxPages {
		s.replace()
	}

	return s.browser
}

// PageRendered records one rendered page toward the replacement threshold.
func (s *Session) PageRendered() {
	s.mu.Lock()
	s.pages++
	s.mu.Unlock()
}

// Close shuts down the browser. Close is safe to call multiple times.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return s.shutdown()
}

// launch starts a new browser with flags that keep background tabs rendering.
// Must be called with mu held.
func (s *Session) launch() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = browser
	s.launcher = lnchr
	return nil
}

// shutdown closes the current browser and launcher.
// Must be called with mu held.
func (s *Session) shutdown() error {
	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
	return err
}

// replace launches a fresh browser and closes the old one. If the new launch
// fails, the old browser is kept so in-flight fetches still complete.
// Must be called with mu held.
func (s *Session) replace() {
	oldBrowser := s.browser
	oldLauncher := s.launcher
	s.browser = nil
	s.launcher = nil

	if err := s.launch(); err != nil {
		s.browser = oldBrowser
		s.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}

	s.pages = 0
}
