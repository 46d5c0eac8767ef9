// Package content holds the static page records: biography, projects,
// contact and social links.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

var (
	ErrMissingName  = errors.New("site name is required")
	ErrMissingTitle = errors.New("project title is required")
	ErrMissingEmail = errors.New("contact email is required")
)

// Site is the whole page content.
type Site struct {
	Name     string    `yaml:"name"`
	Hero     Hero      `yaml:"hero"`
	About    About     `yaml:"about"`
	Projects []Project `yaml:"projects"`
	Contact  Contact   `yaml:"contact"`
	Socials  []Link    `yaml:"socials"`
}

type Hero struct {
	Lead     string `yaml:"lead"`
	Headline string `yaml:"headline"`
}

type About struct {
	Image      string   `yaml:"image"`
	Paragraphs []string `yaml:"paragraphs"`
	Quote      string   `yaml:"quote"`
	Skills     []string `yaml:"skills"`
}

// Project is one project card.
type Project struct {
	Header    string   `yaml:"header"`
	Title     string   `yaml:"title"`
	Subtitle  string   `yaml:"subtitle"`
	Challenge string   `yaml:"challenge"`
	Solution  string   `yaml:"solution"`
	Tags      []string `yaml:"tags"`
	Link      *Link    `yaml:"link"`
	Image     string   `yaml:"image"`
}

type Contact struct {
	Heading    string `yaml:"heading"`
	Subheading string `yaml:"subheading"`
	Email      string `yaml:"email"`
	Footer     string `yaml:"footer"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the embedded site.
func Default() *Site {
	site, err := Parse(defaultSite)
	if err != nil {
		panic(fmt.Sprintf("content: embedded site is invalid: %v", err))
	}
	return site
}

// Load reads a site from a YAML file. An empty path returns the default site.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingName
	}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: %w", i+1, ErrMissingTitle)
		}
	}
	if strings.TrimSpace(s.Contact.Email) == "" {
		return ErrMissingEmail
	}
	return nil
}

// Images lists every image path referenced by the site, in page order.
func (s *Site) Images() []string {
	var out []string
	if s.About.Image != "" {
		out = append(out, s.About.Image)
	}
	for _, p := range s.Projects {
		if p.Image != "" {
			out = append(out, p.Image)
		}
	}
	return out
}
