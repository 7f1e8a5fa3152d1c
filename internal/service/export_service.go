package service

import (
	"bytes"
	"fmt"
	"strings"

	"pptx-notes-server/internal/domain"
	apperrors "pptx-notes-server/pkg/errors"

	"github.com/go-pdf/fpdf"
)

// Layout constants in millimeters on a portrait A4 page.
const (
	exportTitle     = "Academic Notes"
	pageTopMargin   = 20.0
	sectionIndent   = 20.0
	lineStep        = 10.0
	pageBottomLimit = 280.0

	titleFontSize   = 18.0
	headingFontSize = 14.0
	entryFontSize   = 12.0
)

// ExportFileName is the suggested download name for the document.
const ExportFileName = "academic_notes.pdf"

// ExportService produces the downloadable PDF from a NotesBundle. It
// walks the same sections the renderer shows, tracking a vertical
// cursor and starting a new page before any entry that would pass the
// page-bottom limit.
type ExportService struct {
	logger domain.Logger
}

func NewExportService(logger domain.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// Export serializes the bundle's well-known topic into PDF bytes. An
// empty bundle still yields a document containing only the title.
func (s *ExportService) Export(bundle domain.NotesBundle) ([]byte, error) {
	doc := s.build(bundle.Topic(domain.DefaultTopic))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		s.logger.Error("PDF generation failed", err)
		return nil, apperrors.NewInternalError("Unexpected error occurred", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportService) build(notes domain.TopicNotes) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	y := pageTopMargin

	pdf.SetFont("Helvetica", "", titleFontSize)
	pageWidth, _ := pdf.GetPageSize()
	titleWidth := pdf.GetStringWidth(exportTitle)
	pdf.Text((pageWidth-titleWidth)/2, y, exportTitle)
	y += lineStep

	for _, sec := range BuildSections(notes) {
		if y > pageBottomLimit {
			pdf.AddPage()
			y = pageTopMargin
		}

		pdf.SetFont("Helvetica", "", headingFontSize)
		pdf.Text(sectionIndent, y, sec.Heading)
		y += lineStep

		pdf.SetFont("Helvetica", "", entryFontSize)
		if sec.Joined {
			pdf.Text(sectionIndent, y, strings.Join(sec.Entries, ", "))
			y += lineStep
			continue
		}

		for i, entry := range sec.Entries {
			pdf.Text(sectionIndent, y, fmt.Sprintf("%d. %s", i+1, entry))
			y += lineStep
			if y > pageBottomLimit {
				pdf.AddPage()
				y = pageTopMargin
			}
		}

		// Extra gap between guiding questions and what follows,
		// matching the shipped layout.
		if sec.Heading == headingGuidingQuestions {
			y += lineStep
		}
	}

	return pdf
}
