// Package markdown renders task descriptions for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/neonterm/retrotodo/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

type rendererKey struct {
	styled bool
	width  int
}

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]renderer{}
)

// Render formats markdown for the terminal. Styled output uses the dark
// glamour style; unstyled output uses the ASCII style with no color.
func Render(styled bool, width int, input string) string {
	value := internalstrings.NormalizeNewlines(input)
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	rendered := safeRender(markdownRenderer(styled, width), value)
	return internalstrings.TrimTrailingNewlines(rendered)
}

// safeRender falls back to the raw markdown if the renderer fails or panics.
func safeRender(r renderer, value string) (out string) {
	out = value
	if r == nil {
		return out
	}
	defer func() {
		_ = recover()
	}()
	formatted, err := r.Render(value)
	if err == nil {
		out = formatted
	}
	return out
}

func markdownRenderer(styled bool, width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	key := rendererKey{styled: styled, width: width}
	if cached, ok := renderers[key]; ok {
		return cached
	}

	style := styles.ASCIIStyleConfig
	if styled {
		style = styles.DarkStyleConfig
	}
	style.Document.Margin = nil

	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = created
	return created
}
