package domain

// DefaultTopic is the single topic key the extraction service populates.
const DefaultTopic = "All Notes"

// TopicNotes is the structured study content extracted for one topic.
// Every sequence field is present (possibly empty) on a well-formed
// payload; consumers must tolerate missing fields from the wire.
type TopicNotes struct {
	GuidingQuestions []string            `json:"guiding_questions"`
	Definitions      []string            `json:"definitions"`
	SpecificTopics   map[string][]string `json:"specific_topics"`
	KeyPhrases       []string            `json:"key_phrases,omitempty"`
	Summary          string              `json:"summary,omitempty"`
	Notes            []string            `json:"notes"`
	ImageReferences  []string            `json:"image_references"`
}

// NotesBundle maps topic name to its extracted notes.
type NotesBundle map[string]TopicNotes

// ParseResult is the extraction service's success payload.
type ParseResult struct {
	Topics NotesBundle `json:"topics"`
}

// Topic returns the named topic's notes, or an empty TopicNotes when
// the key is absent. Absence degrades, it never fails.
func (b NotesBundle) Topic(name string) TopicNotes {
	if b == nil {
		return emptyTopicNotes()
	}
	notes, ok := b[name]
	if !ok {
		return emptyTopicNotes()
	}
	return notes.Normalized()
}

// HasData reports whether there is anything to render: guiding
// questions, notes, or image references.
func (t TopicNotes) HasData() bool {
	return len(t.GuidingQuestions) > 0 || len(t.Notes) > 0 || len(t.ImageReferences) > 0
}

// Normalized returns a copy with nil sequences replaced by empty ones
// so downstream code never branches on nil.
func (t TopicNotes) Normalized() TopicNotes {
	if t.GuidingQuestions == nil {
		t.GuidingQuestions = []string{}
	}
	if t.Definitions == nil {
		t.Definitions = []string{}
	}
	if t.SpecificTopics == nil {
		t.SpecificTopics = map[string][]string{}
	}
	if t.Notes == nil {
		t.Notes = []string{}
	}
	if t.ImageReferences == nil {
		t.ImageReferences = []string{}
	}
	return t
}

func emptyTopicNotes() TopicNotes {
	return TopicNotes{
		GuidingQuestions: []string{},
		Definitions:      []string{},
		SpecificTopics:   map[string][]string{},
		Notes:            []string{},
		ImageReferences:  []string{},
	}
}
