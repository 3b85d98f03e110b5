package term

import "github.com/pkg/browser"

// URLOpener opens a URL for the user. Implementations are selected at
// startup so platform behavior is not decided inline at the call site.
type URLOpener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the system browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// NoopOpener does nothing, for platforms or sessions where opening a
// browser makes no sense.
type NoopOpener struct{}

func (NoopOpener) Open(string) error { return nil }
