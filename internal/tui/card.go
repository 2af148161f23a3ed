package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/socialpulse/internal/social"
	"github.com/rshade/socialpulse/internal/tui/detail"
)

// avatarGlyph stands in for a profile picture, which a terminal cannot show.
const avatarGlyph = "◉"

// DetailView is the expanded region of a card.
type DetailView struct {
	// Title heads the region, e.g. "Recent Posts".
	Title  string
	Status detail.Status
	// Lines are the rendered detail items, already truncated for display.
	Lines []string
	// Empty is shown when the detail loaded with no items, e.g. "No posts yet".
	Empty string
	// ErrorText replaces Empty after a failed fetch. Leave it blank to render failures as empty.
	Failed    bool
	ErrorText string
}

// Card is the view state of one row: a header, a body and, when expanded, a detail region.
type Card struct {
	Avatar   social.Ref
	Handle   string
	Meta     string
	Badge    string
	Body     string
	Media    social.Ref
	Selected bool
	Expanded bool
	Detail   DetailView
}

// RenderCard renders c at the given width. frame is the current spinner frame,
// shown while the detail is loading.
func RenderCard(c Card, width int, frame string) string {
	inner := cardWidth(width) - CardStyle.GetHorizontalFrameSize()
	// Width on the card includes its padding; its children get what is left.
	content := inner - CardStyle.GetHorizontalPadding()

	parts := []string{renderHeader(c)}
	if c.Body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(content).Render(c.Body))
	}
	if c.Media.Present() {
		parts = append(parts, SubtleStyle.Render("[media] "+c.Media.URL()))
	}
	if c.Expanded {
		parts = append(parts, DetailStyle.Width(content).Render(renderDetail(c.Detail, frame)))
	}

	style := CardStyle
	if c.Selected {
		style = SelectedCardStyle
	}
	return style.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func cardWidth(width int) int {
	switch {
	case width <= 0:
		return defaultWidth
	case width > maxCardWidth:
		return maxCardWidth
	case width < minCardWidth:
		return minCardWidth
	default:
		return width
	}
}

// renderAvatar shows a glyph when there is a picture and the handle's initial otherwise.
func renderAvatar(avatar social.Ref, handle string) string {
	if avatar.Present() {
		return AvatarStyle.Render(avatarGlyph)
	}
	return AvatarStyle.Render(social.Initial(handle))
}

func renderHeader(c Card) string {
	header := []string{renderAvatar(c.Avatar, c.Handle), HandleStyle.Render("@" + c.Handle)}
	if c.Meta != "" {
		header = append(header, SubtleStyle.Render(c.Meta))
	}
	if c.Badge != "" {
		header = append(header, BadgeStyle.Render(c.Badge))
	}
	if c.Expanded {
		header = append(header, SubtleStyle.Render("[x] close"))
	}
	return strings.Join(header, "  ")
}

func renderDetail(d DetailView, frame string) string {
	body := renderDetailBody(d, frame)
	if d.Title == "" {
		return body
	}
	return HandleStyle.Render(d.Title) + "\n" + body
}

func renderDetailBody(d DetailView, frame string) string {
	if d.Status != detail.StatusLoaded {
		return frame + " Loading…"
	}

	if len(d.Lines) == 0 {
		if d.Failed && d.ErrorText != "" {
			return CriticalStyle.Render(d.ErrorText)
		}
		return SubtleStyle.Render(d.Empty)
	}

	lines := make([]string, len(d.Lines))
	for i, line := range d.Lines {
		lines[i] = "• " + line
	}
	return strings.Join(lines, "\n")
}
