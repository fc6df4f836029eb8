package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tourcopy/tourism-content-be/internal/modules/content/models"
)

type fakeClipboard struct {
	err     error
	written []string
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func testBundle() models.Bundle {
	return models.Bundle{
		Main:       "main content",
		Variations: "variation one\n\nvariation two",
		Hashtags:   "#Travel #Lisbon",
	}
}

func TestPresenter_Render(t *testing.T) {
	p := NewPresenter(&fakeClipboard{})

	t.Run("no bundle yet", func(t *testing.T) {
		assert.Equal(t, "No content available for this tab.", p.Render())
	})

	p.SetBundle(testBundle())

	tests := []struct {
		tab  Tab
		want string
	}{
		{TabMain, "main content"},
		{TabVariations, "variation one\n\nvariation two"},
		{TabHashtags, "#Travel #Lisbon"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			p.SwitchTab(tt.tab)
			assert.Equal(t, tt.want, p.Render())
		})
	}
}

func TestPresenter_SwitchTab_UnknownIgnored(t *testing.T) {
	p := NewPresenter(&fakeClipboard{})
	p.SetBundle(testBundle())

	p.SwitchTab(TabHashtags)
	p.SwitchTab(Tab("bogus"))

	assert.Equal(t, TabHashtags, p.ActiveTab())
}

func TestPresenter_SetBundle_ResetsToMainTab(t *testing.T) {
	p := NewPresenter(&fakeClipboard{})
	p.SetBundle(testBundle())
	p.SwitchTab(TabVariations)

	p.SetBundle(testBundle())
	assert.Equal(t, TabMain, p.ActiveTab())
}

func TestPresenter_Observe(t *testing.T) {
	p := NewPresenter(&fakeClipboard{})

	p.Observe(State{Status: StatusFailed})
	assert.False(t, p.HasBundle())

	p.Observe(State{Status: StatusSucceeded, Bundle: testBundle(), HasBundle: true})
	assert.True(t, p.HasBundle())
	assert.Equal(t, "main content", p.Render())
}

func TestPresenter_Copy(t *testing.T) {
	t.Run("copies active tab content", func(t *testing.T) {
		clip := &fakeClipboard{}
		p := NewPresenter(clip)
		p.SetBundle(testBundle())
		p.SwitchTab(TabHashtags)

		msg := p.Copy()

		assert.Equal(t, "Content copied to clipboard!", msg)
		assert.Equal(t, []string{"#Travel #Lisbon"}, clip.written)
	})

	t.Run("nothing to copy", func(t *testing.T) {
		clip := &fakeClipboard{}
		p := NewPresenter(clip)

		msg := p.Copy()

		assert.Equal(t, "No content to copy", msg)
		assert.Empty(t, clip.written)
	})

	t.Run("clipboard failure", func(t *testing.T) {
		clip := &fakeClipboard{err: errors.New("no display")}
		p := NewPresenter(clip)
		p.SetBundle(testBundle())

		assert.Equal(t, "Failed to copy content", p.Copy())
	})
}

func TestPresenter_CopyLabel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := NewPresenter(&fakeClipboard{})
	p.now = func() time.Time { return now }
	p.SetBundle(testBundle())

	assert.Equal(t, "📋 Copy to Clipboard", p.CopyLabel())

	p.Copy()
	assert.Equal(t, "✅ Copied!", p.CopyLabel())

	now = now.Add(time.Second)
	assert.Equal(t, "✅ Copied!", p.CopyLabel())

	// confirmation reverts after the window passes
	now = now.Add(2 * time.Second)
	assert.Equal(t, "📋 Copy to Clipboard", p.CopyLabel())
}

func TestPresenter_CopyFailureDoesNotConfirm(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clip := &fakeClipboard{err: errors.New("no display")}
	p := NewPresenter(clip)
	p.now = func() time.Time { return now }
	p.SetBundle(testBundle())

	p.Copy()
	assert.Equal(t, "📋 Copy to Clipboard", p.CopyLabel())
}
