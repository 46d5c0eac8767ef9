package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/folio/internal/assets"
)

type frameMsg time.Time

type thumbKey struct {
	path string
	cols int
	rows int
}

type assetLoadedMsg struct {
	key   thumbKey
	thumb assets.Thumbnail
	err   error
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func loadAssetCmd(key thumbKey, path string) tea.Cmd {
	return func() tea.Msg {
		thumb, err := assets.LoadOrPlaceholder(path, key.cols, key.rows)
		return assetLoadedMsg{key: key, thumb: thumb, err: err}
	}
}
