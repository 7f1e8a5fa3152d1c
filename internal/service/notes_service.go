package service

import (
	"fmt"
	"strings"

	"pptx-notes-server/internal/domain"
)

// Section headings in their fixed display order.
const (
	headingGuidingQuestions = "Guiding Questions"
	headingNotes            = "Notes"
	headingImageReferences  = "Image References"
)

const (
	renderedTitle = "Your Academic Notes"
	emptyMessage  = "No notes available."
)

// Section is one displayable block of a topic's notes. Joined sections
// collapse to a single comma-separated line instead of numbered
// entries.
type Section struct {
	Heading string
	Entries []string
	Joined  bool
}

// BuildSections walks the topic in display order and keeps only the
// non-empty sections. Renderer and exporter both consume this, so
// what one shows the other emits.
func BuildSections(notes domain.TopicNotes) []Section {
	sections := make([]Section, 0, 3)
	if len(notes.GuidingQuestions) > 0 {
		sections = append(sections, Section{Heading: headingGuidingQuestions, Entries: notes.GuidingQuestions})
	}
	if len(notes.Notes) > 0 {
		sections = append(sections, Section{Heading: headingNotes, Entries: notes.Notes})
	}
	if len(notes.ImageReferences) > 0 {
		sections = append(sections, Section{Heading: headingImageReferences, Entries: notes.ImageReferences, Joined: true})
	}
	return sections
}

// RenderedNotes is the on-screen view of a bundle.
type RenderedNotes struct {
	Title    string            `json:"title"`
	Empty    bool              `json:"empty"`
	Message  string            `json:"message,omitempty"`
	Sections []RenderedSection `json:"sections,omitempty"`
}

// RenderedSection is one displayed section with its items already
// numbered (or joined, for image references).
type RenderedSection struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// NotesService renders a NotesBundle into its display structure.
type NotesService struct {
	logger domain.Logger
}

func NewNotesService(logger domain.Logger) *NotesService {
	return &NotesService{logger: logger}
}

// Render extracts the well-known topic and produces the sectioned
// view. An empty bundle renders a distinct empty state, never a blank
// document.
func (s *NotesService) Render(bundle domain.NotesBundle) *RenderedNotes {
	notes := bundle.Topic(domain.DefaultTopic)

	if !notes.HasData() {
		return &RenderedNotes{
			Title:   renderedTitle,
			Empty:   true,
			Message: emptyMessage,
		}
	}

	sections := BuildSections(notes)
	rendered := make([]RenderedSection, 0, len(sections))
	for _, sec := range sections {
		rs := RenderedSection{Heading: sec.Heading}
		if sec.Joined {
			rs.Items = []string{strings.Join(sec.Entries, ", ")}
		} else {
			rs.Items = make([]string, 0, len(sec.Entries))
			for i, entry := range sec.Entries {
				rs.Items = append(rs.Items, fmt.Sprintf("%d. %s", i+1, entry))
			}
		}
		rendered = append(rendered, rs)
	}

	return &RenderedNotes{
		Title:    renderedTitle,
		Sections: rendered,
	}
}
