package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/folio/internal/assets"
	"github.com/olivier-w/folio/internal/content"
)

const (
	sectionPadding = 3
	maxContentCols = 96
	portraitCols   = 24
	portraitRows   = 12
	maxShotRows    = 14
)

// thumbFunc returns the thumbnail for path fitted to cols x rows, or a
// placeholder while it is loading or when it failed.
type thumbFunc func(path string, cols, rows int) assets.Thumbnail

type sectionLayout struct {
	width   int
	height  int
	desktop bool
}

func (l sectionLayout) contentWidth() int {
	return max(min(l.width-4, maxContentCols), 20)
}

// frame pads a section body to at least one viewport of height and centers
// it horizontally.
func (l sectionLayout) frame(body []string) []string {
	cw := l.contentWidth()
	margin := strings.Repeat(" ", max((l.width-cw)/2, 0))
	out := make([]string, 0, len(body)+2*sectionPadding)
	for range sectionPadding {
		out = append(out, "")
	}
	for _, line := range body {
		out = append(out, fitLine(margin+line, l.width))
	}
	for range sectionPadding {
		out = append(out, "")
	}
	for len(out) < l.height {
		out = append(out, "")
	}
	for i, line := range out {
		if line == "" {
			out[i] = strings.Repeat(" ", max(l.width, 0))
		}
	}
	return out
}

func renderAbout(site *content.Site, l sectionLayout, thumb thumbFunc) []string {
	cw := l.contentWidth()
	portrait := thumb(site.About.Image, portraitCols, portraitRows)
	left := lipgloss.JoinVertical(lipgloss.Center,
		portrait.String(),
		"",
		headingStyle.Render(site.Name),
	)

	textWidth := cw
	if l.desktop {
		textWidth = cw - portraitCols - 4
	}
	var right []string
	for _, p := range site.About.Paragraphs {
		right = append(right, bodyStyle.Width(textWidth).Render(p), "")
	}
	if site.About.Quote != "" {
		right = append(right, quoteStyle.Width(textWidth).Render("\""+site.About.Quote+"\""), "")
	}
	right = append(right, flowTags(site.About.Skills, textWidth)...)
	rightBlock := lipgloss.JoinVertical(lipgloss.Left, right...)

	if l.desktop {
		return l.frame(splitLines(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", rightBlock)))
	}
	return l.frame(splitLines(lipgloss.JoinVertical(lipgloss.Left, left, "", rightBlock)))
}

func renderProjects(site *content.Site, l sectionLayout, thumb thumbFunc) []string {
	cw := l.contentWidth()
	var body []string
	for i, p := range site.Projects {
		if i > 0 {
			body = append(body, "", "", "", "")
		}
		body = append(body, splitLines(renderProject(p, cw, l.desktop, thumb))...)
	}
	return l.frame(body)
}

func renderProject(p content.Project, width int, desktop bool, thumb thumbFunc) string {
	metaWidth := width
	detailWidth := width
	if desktop {
		metaWidth = width / 3
		detailWidth = width - metaWidth - 4
	}

	meta := []string{metaStyle.Render(strings.ToUpper(p.Header)), "", titleStyle.Width(metaWidth).Render(p.Title)}
	if p.Subtitle != "" {
		meta = append(meta, mutedStyle.Width(metaWidth).Render(p.Subtitle))
	}
	if p.Link != nil {
		meta = append(meta, "", linkStyle.Render(strings.ToUpper(p.Link.Label))+" →")
		if p.Link.URL != "" {
			meta = append(meta, metaStyle.Width(metaWidth).Render(p.Link.URL))
		}
	}

	shotRows := min(detailWidth*9/32, maxShotRows)
	shot := thumb(p.Image, detailWidth, shotRows)
	detail := []string{
		shot.String(),
		"",
		metaStyle.Render("THE CHALLENGE"),
		mutedStyle.Width(detailWidth).Render(p.Challenge),
		"",
		metaStyle.Render("THE SOLUTION"),
		bodyStyle.Width(detailWidth).Render(p.Solution),
		"",
	}
	detail = append(detail, flowTags(p.Tags, detailWidth)...)

	metaBlock := lipgloss.JoinVertical(lipgloss.Left, meta...)
	detailBlock := lipgloss.JoinVertical(lipgloss.Left, detail...)
	if desktop {
		return lipgloss.JoinHorizontal(lipgloss.Top, metaBlock, "    ", detailBlock)
	}
	return lipgloss.JoinVertical(lipgloss.Left, metaBlock, "", detailBlock)
}

func renderContact(site *content.Site, l sectionLayout) []string {
	cw := l.contentWidth()
	c := site.Contact
	body := []string{
		centerLine(titleStyle.Render(c.Heading), cw),
		centerLine(mutedStyle.Italic(true).Render(c.Subheading), cw),
		"",
		"",
		centerLine(linkStyle.Render(c.Email)+" →", cw),
		"",
		"",
	}
	var socials []string
	for _, s := range site.Socials {
		socials = append(socials, navLinkStyle.Render(s.Label)+" "+metaStyle.Render(s.URL))
	}
	if len(socials) > 0 {
		for _, line := range splitLines(lipgloss.JoinVertical(lipgloss.Left, socials...)) {
			body = append(body, centerLine(line, cw))
		}
		body = append(body, "", "")
	}
	if c.Footer != "" {
		body = append(body, centerLine(metaStyle.Render(strings.ToUpper(c.Footer)), cw))
	}
	return l.frame(body)
}
