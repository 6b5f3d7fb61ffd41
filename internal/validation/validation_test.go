package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFields() Fields {
	return Fields{
		Title:    "Exam Results 2024",
		Summary:  "Board publishes the annual exam results",
		Content:  strings.Repeat("<p>word </p>", 60),
		ImageURL: "https://x/y.jpg",
		Category: "News",
	}
}

func TestCheck_ArticleRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
		code   string
	}{
		{name: "valid", mutate: func(f *Fields) {}, code: ""},
		{name: "missing title", mutate: func(f *Fields) { f.Title = "   " }, code: CodeTitleRequired},
		{name: "short title checked before other fields", mutate: func(f *Fields) {
			f.Title = "Hi"
			f.Summary = "short"
		}, code: CodeTitleTooShort},
		{name: "title of five runes", mutate: func(f *Fields) { f.Title = "ಕನ್ನಡ" }, code: ""},
		{name: "missing summary", mutate: func(f *Fields) { f.Summary = "" }, code: CodeSummaryRequired},
		{name: "short summary", mutate: func(f *Fields) { f.Summary = "short" }, code: CodeSummaryTooShort},
		{name: "content only tags", mutate: func(f *Fields) { f.Content = "<p>  </p><br>" }, code: CodeContentRequired},
		{name: "content under fifty words", mutate: func(f *Fields) { f.Content = strings.Repeat("<p>word </p>", 49) }, code: CodeContentTooShort},
		{name: "content of exactly fifty words", mutate: func(f *Fields) { f.Content = strings.Repeat("word ", 50) }, code: ""},
		{name: "missing image", mutate: func(f *Fields) { f.ImageURL = " " }, code: CodeImageRequired},
		{name: "missing category", mutate: func(f *Fields) { f.Category = "" }, code: CodeCategoryRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)

			err := Check(f, ArticleRules)
			if tt.code == "" {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.code, err.Code)
				assert.NotEmpty(t, err.Message)
			}
		})
	}
}

func TestCheck_SubmissionSummaryBoundary(t *testing.T) {
	f := validFields()
	f.Content = "<p>Short but present</p>"
	f.Category = ""

	f.Summary = strings.Repeat("s", 19)
	err := Check(f, SubmissionRules)
	if assert.NotNil(t, err) {
		assert.Equal(t, CodeSummaryTooShort, err.Code)
	}

	f.Summary = strings.Repeat("s", 20)
	assert.Nil(t, Check(f, SubmissionRules))
}

func TestCheck_CurationRequiresCategory(t *testing.T) {
	f := validFields()
	f.Category = " "

	err := Check(f, CurationRules)
	if assert.NotNil(t, err) {
		assert.Equal(t, CodeCategoryRequired, err.Code)
	}
}

func TestCheck_CurationRequiresMinimumWords(t *testing.T) {
	f := validFields()
	f.Content = "<p>a few words</p>"

	err := Check(f, CurationRules)
	if assert.NotNil(t, err) {
		assert.Equal(t, CodeContentTooShort, err.Code)
	}

	f.Content = strings.Repeat("<p>word </p>", MinContentWords)
	assert.Nil(t, Check(f, CurationRules))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("<p></p>"))
	assert.Equal(t, 3, WordCount("<p>one <b>two</b></p><p>three</p>"))
	assert.Equal(t, 60, WordCount(strings.Repeat("<p>word </p>", 60)))
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "TITLE_TOO_SHORT: Title must be at least 5 characters", New(CodeTitleTooShort, "Title must be at least 5 characters").Error())
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, []string{"Hello", "world", "again"}, strings.Fields(StripHTML("<h1>Hello</h1><p>world</p><script>evil()</script><p>again</p>")))
}
