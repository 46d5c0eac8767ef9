package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/content"
	"github.com/olivier-w/folio/internal/ui"
)

// startupOptions carries the root command flags.
type startupOptions struct {
	configPath  string
	contentPath string
	seed        uint64
}

// settings is everything a page needs before it can be drawn.
type settings struct {
	cfg     *config.Config
	site    *content.Site
	baseDir string
	seed    uint64
}

func loadSettings(opts startupOptions) (settings, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return settings{}, err
	}
	path := cfg.Content
	if opts.contentPath != "" {
		path = opts.contentPath
	}
	site, err := content.Load(path)
	if err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg, site: site, seed: cfg.Seed}
	if opts.seed != 0 {
		s.seed = opts.seed
	}
	if s.seed == 0 {
		s.seed = rand.Uint64()
	}
	if path != "" {
		s.baseDir = filepath.Dir(path)
	}
	return s, nil
}

func (s settings) rand() *rand.Rand {
	return newRand(s.seed)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func buildPageModel(opts startupOptions) (ui.Model, error) {
	s, err := loadSettings(opts)
	if err != nil {
		return ui.Model{}, fmt.Errorf("open page: %w", err)
	}
	return ui.New(ui.Options{
		Site:    s.site,
		Config:  s.cfg,
		BaseDir: s.baseDir,
		Rand:    s.rand(),
	}), nil
}
