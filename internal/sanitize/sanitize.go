// Package sanitize is the single XSS defence point for article HTML.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// Policy returns the shared article content policy: the user-generated
// content defaults plus images, headings, video and iframe embeds.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("img", "h1", "h2", "video", "iframe")
		p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
		p.AllowAttrs("src", "poster", "controls", "width", "height").OnElements("video")
		p.AllowAttrs("src", "width", "height", "frameborder", "allow", "allowfullscreen").OnElements("iframe")
		policy = p
	})
	return policy
}

// HTML strips everything outside the article allowlist.
func HTML(content string) string {
	return Policy().Sanitize(content)
}
