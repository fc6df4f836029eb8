package session

import (
	"time"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
)

type Tab string

const (
	TabMain       Tab = "main"
	TabVariations Tab = "variations"
	TabHashtags   Tab = "hashtags"
)

const copyConfirmWindow = 2 * time.Second

// Presenter renders the stored bundle one tab at a time and owns the
// copy-to-clipboard affordance. Switching tabs re-renders from the stored
// bundle; it never re-generates.
type Presenter struct {
	clip         ClipboardWriter
	now          func() time.Time
	active       Tab
	bundle       models.Bundle
	hasBundle    bool
	confirmUntil time.Time
}

func NewPresenter(clip ClipboardWriter) *Presenter {
	return &Presenter{
		clip:   clip,
		now:    time.Now,
		active: TabMain,
	}
}

// Observe is the controller subscriber: a successful generation stores the
// new bundle and selects the first tab.
func (p *Presenter) Observe(s State) {
	if s.Status == StatusSucceeded {
		p.SetBundle(s.Bundle)
	}
}

// SetBundle replaces the stored bundle and resets the active tab to main.
func (p *Presenter) SetBundle(b models.Bundle) {
	p.bundle = b
	p.hasBundle = true
	p.active = TabMain
}

// SwitchTab activates the given tab. Unknown tab ids are ignored so exactly
// one known tab is active at all times.
func (p *Presenter) SwitchTab(tab Tab) {
	switch tab {
	case TabMain, TabVariations, TabHashtags:
		p.active = tab
	}
}

func (p *Presenter) ActiveTab() Tab {
	return p.active
}

func (p *Presenter) HasBundle() bool {
	return p.hasBundle
}

// Render returns the active tab's content from the stored bundle.
func (p *Presenter) Render() string {
	if content := p.content(p.active); content != "" {
		return content
	}
	return "No content available for this tab."
}

// Copy writes the active tab's content to the clipboard and returns a status
// message. Nothing is written when there is no content; a clipboard failure
// is a status message, not an error.
func (p *Presenter) Copy() string {
	content := p.content(p.active)
	if content == "" {
		return "No content to copy"
	}
	if err := p.clip.Write(content); err != nil {
		return "Failed to copy content"
	}
	p.confirmUntil = p.now().Add(copyConfirmWindow)
	return "Content copied to clipboard!"
}

// CopyLabel returns the copy control's label, showing a transient
// confirmation that reverts on its own.
func (p *Presenter) CopyLabel() string {
	if p.now().Before(p.confirmUntil) {
		return "✅ Copied!"
	}
	return "📋 Copy to Clipboard"
}

func (p *Presenter) content(tab Tab) string {
	if !p.hasBundle {
		return ""
	}
	switch tab {
	case TabMain:
		return p.bundle.Main
	case TabVariations:
		return p.bundle.Variations
	case TabHashtags:
		return p.bundle.Hashtags
	}
	return ""
}
