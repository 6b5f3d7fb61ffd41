// Package extract turns uploaded Word documents into article fields.
package extract

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"newsportal/internal/language"
	"newsportal/internal/models"
)

const (
	maxTitleLength   = 150
	maxSummaryLength = 200
	noContent        = "No content extracted"
)

// Converter renders a document to HTML.
type Converter interface {
	ToHTML(data []byte) (string, error)
}

// Result mirrors the upload response: either Data or Error is meaningful.
// Err keeps the underlying failure for callers that branch on it.
type Result struct {
	Success bool                 `json:"success"`
	Data    models.ExtractedData `json:"data"`
	Error   string               `json:"error,omitempty"`
	Err     error                `json:"-"`
}

type Extractor struct {
	converter Converter
}

// NewExtractor wires a converter; nil selects the .docx converter.
func NewExtractor(converter Converter) *Extractor {
	if converter == nil {
		converter = DocxConverter{}
	}
	return &Extractor{converter: converter}
}

// Extract converts the document and applies the title/summary/content
// heuristics. Failures are reported in the Result with Success false; the
// upload path rejects such documents instead of storing them.
func (e *Extractor) Extract(data []byte) Result {
	rendered, err := e.converter.ToHTML(data)
	if err != nil {
		return Result{Success: false, Error: err.Error(), Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return Result{Success: false, Error: err.Error(), Err: err}
	}

	lines := nonEmptyLines(blockText(doc))
	if len(lines) == 0 {
		return Result{Success: false, Error: noContent, Err: errors.New(noContent)}
	}

	title := truncate(lines[0], maxTitleLength)

	consumed := 1
	summary := ""
	if len(lines) > 1 && utf8.RuneCountInString(lines[1]) < maxSummaryLength {
		summary = lines[1]
		consumed = 2
	}

	content := strings.Join(lines[consumed:], "\n")
	if rich := paragraphText(rendered, consumed); rich != "" {
		content = rich
	}

	if summary == "" && content != "" {
		first := content
		if i := strings.IndexByte(first, '\n'); i >= 0 {
			first = first[:i]
		}
		summary = truncate(strings.TrimSpace(first), maxSummaryLength)
	}

	lang := language.Detect(strings.Join(lines, "\n"))

	return Result{
		Success: true,
		Data: models.ExtractedData{
			Title:           title,
			Summary:         summary,
			Content:         content,
			ContentLanguage: string(lang),
		},
	}
}

var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "table": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// blockText strips tags and ends every block element with a newline.
func blockText(doc *goquery.Document) string {
	var b strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		switch n.Type {
		case xhtml.TextNode:
			b.WriteString(n.Data)
			return
		case xhtml.ElementNode:
			switch n.Data {
			case "br":
				b.WriteByte('\n')
				return
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == xhtml.ElementNode && blockElements[n.Data] {
			b.WriteByte('\n')
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return b.String()
}

var (
	breakTag     = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockEndTag  = regexp.MustCompile(`(?i)</(p|h[1-6])\s*>`)
	anyTag       = regexp.MustCompile(`<[^>]*>`)
	blankRunExpr = regexp.MustCompile(`\n{3,}`)
)

// paragraphText keeps paragraph breaks from the rendered HTML: </p> and
// headings become blank lines, <br> becomes a newline, all other tags are
// dropped. The first skip non-empty lines (already used as title and
// summary) are removed.
func paragraphText(rendered string, skip int) string {
	s := breakTag.ReplaceAllString(rendered, "\n")
	s = blockEndTag.ReplaceAllString(s, "\n\n")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if skip > 0 && line != "" {
			skip--
			continue
		}
		if skip > 0 {
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	out = blankRunExpr.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}
