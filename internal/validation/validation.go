// Package validation checks article-shaped input and reports failures as
// machine-readable codes.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	CodeTitleRequired    = "TITLE_REQUIRED"
	CodeTitleTooShort    = "TITLE_TOO_SHORT"
	CodeSummaryRequired  = "SUMMARY_REQUIRED"
	CodeSummaryTooShort  = "SUMMARY_TOO_SHORT"
	CodeContentRequired  = "CONTENT_REQUIRED"
	CodeContentTooShort  = "CONTENT_TOO_SHORT"
	CodeImageRequired    = "IMAGE_REQUIRED"
	CodeCategoryRequired = "CATEGORY_REQUIRED"
	CodeInvalidRequest   = "INVALID_REQUEST"
)

const (
	MinTitleLength   = 5
	MinSummaryLength = 20
	MinContentWords  = 50
)

// Error is a validation failure the caller can branch on.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Fields is the article-shaped input shared by articles and submissions.
type Fields struct {
	Title    string
	Summary  string
	Content  string
	ImageURL string
	Category string
}

// Rules selects which checks beyond the common presence/length battery apply.
type Rules struct {
	MinContentWords int
	RequireCategory bool
}

var (
	// ArticleRules is the full battery applied to admin-authored articles.
	ArticleRules = Rules{MinContentWords: MinContentWords, RequireCategory: true}
	// SubmissionRules applies to institution submissions.
	SubmissionRules = Rules{}
	// CurationRules applies when an intake is promoted with an admin-chosen
	// category. The result is an article, so the word minimum holds too.
	CurationRules = Rules{MinContentWords: MinContentWords, RequireCategory: true}
)

// Check runs the battery in order and returns the first failure.
func Check(f Fields, r Rules) *Error {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return New(CodeTitleRequired, "Title is required")
	}
	if utf8.RuneCountInString(title) < MinTitleLength {
		return New(CodeTitleTooShort, "Title must be at least 5 characters")
	}

	summary := strings.TrimSpace(f.Summary)
	if summary == "" {
		return New(CodeSummaryRequired, "Summary is required")
	}
	if utf8.RuneCountInString(summary) < MinSummaryLength {
		return New(CodeSummaryTooShort, "Summary must be at least 20 characters")
	}

	words := WordCount(f.Content)
	if words == 0 {
		return New(CodeContentRequired, "Content is required")
	}
	if r.MinContentWords > 0 && words < r.MinContentWords {
		return New(CodeContentTooShort, "Content must be at least 50 words")
	}

	if strings.TrimSpace(f.ImageURL) == "" {
		return New(CodeImageRequired, "Image is required")
	}

	if r.RequireCategory && strings.TrimSpace(f.Category) == "" {
		return New(CodeCategoryRequired, "Category is required")
	}

	return nil
}

// StripHTML returns the text content of an HTML fragment. Element
// boundaries become spaces so adjacent blocks do not run together.
func StripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			b.WriteByte(' ')
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return b.String()
}

// WordCount counts whitespace-separated words in the text of an HTML fragment.
func WordCount(fragment string) int {
	if strings.TrimSpace(fragment) == "" {
		return 0
	}
	return len(strings.Fields(StripHTML(fragment)))
}
