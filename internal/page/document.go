package page

import "strings"

// Section is one addressable block of the page, measured in rows.
type Section struct {
	ID     string
	Height int
}

// Document is the ordered section layout of the page.
type Document struct {
	sections []Section
}

// NewDocument builds a layout. Ids are normalized to lowercase and negative
// heights count as zero.
func NewDocument(sections ...Section) Document {
	out := make([]Section, len(sections))
	for i, s := range sections {
		if s.Height < 0 {
			s.Height = 0
		}
		s.ID = strings.ToLower(s.ID)
		out[i] = s
	}
	return Document{sections: out}
}

// Height is the total content height.
func (d Document) Height() int {
	total := 0
	for _, s := range d.sections {
		total += s.Height
	}
	return total
}

// Offset returns the first row of the section with the given id.
func (d Document) Offset(id string) (int, bool) {
	id = strings.ToLower(id)
	y := 0
	for _, s := range d.sections {
		if s.ID == id {
			return y, true
		}
		y += s.Height
	}
	return 0, false
}

// Sections returns a copy of the layout.
func (d Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}
