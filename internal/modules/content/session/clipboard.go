package session

import "github.com/atotto/clipboard"

// ClipboardWriter is the platform clipboard collaborator. Writes may fail
// (headless hosts, denied permissions); failures surface as status messages.
type ClipboardWriter interface {
	Write(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard returns a writer backed by the OS clipboard.
func NewSystemClipboard() ClipboardWriter {
	return systemClipboard{}
}

func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
