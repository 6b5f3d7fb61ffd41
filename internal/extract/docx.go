package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

var (
	// ErrNotDocx is returned when the upload is not a readable .docx archive.
	ErrNotDocx = errors.New("file is not a valid .docx document")
	// ErrDocumentTooLarge is returned when the document part decompresses
	// past the converter's limit.
	ErrDocumentTooLarge = errors.New("document is too large once decompressed")
)

// DefaultMaxDocumentBytes caps word/document.xml when no limit is configured.
const DefaultMaxDocumentBytes int64 = 80 << 20

// DocxConverter renders the main document part of a .docx file as simple
// HTML: one <p> or <hN> per paragraph, <br> for line breaks.
type DocxConverter struct {
	// MaxBytes bounds the decompressed size of word/document.xml.
	// Zero selects DefaultMaxDocumentBytes.
	MaxBytes int64
}

func (c DocxConverter) ToHTML(data []byte) (string, error) {
	limit := c.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxDocumentBytes
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%w: word/document.xml missing", ErrNotDocx)
	}

	if part.UncompressedSize64 > uint64(limit) {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrDocumentTooLarge, part.UncompressedSize64, limit)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open document part: %w", err)
	}
	defer rc.Close()

	// The header size is not trusted; the stream is capped as well.
	return renderDocument(&cappedReader{r: rc, remaining: limit})
}

// cappedReader fails with ErrDocumentTooLarge once more than remaining
// bytes are available, instead of truncating silently like io.LimitReader.
type cappedReader struct {
	r         io.Reader
	remaining int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining <= 0 {
		var one [1]byte
		n, err := c.r.Read(one[:])
		if n > 0 {
			return 0, ErrDocumentTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	return n, err
}

// renderDocument walks WordprocessingML tokens. Only the local names of
// elements are inspected, so any namespace prefix works.
func renderDocument(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		out      strings.Builder
		para     strings.Builder
		inPara   bool
		inText   bool
		heading  int
		numbered bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				heading = 0
				numbered = false
				para.Reset()
			case "pStyle":
				heading = headingLevel(attr(t, "val"))
			case "numPr":
				numbered = true
			case "t":
				inText = true
			case "br", "cr":
				if inPara {
					para.WriteString("<br>")
				}
			case "tab":
				if inPara {
					para.WriteByte(' ')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if !inPara {
					continue
				}
				inPara = false
				tag := "p"
				if heading > 0 {
					tag = fmt.Sprintf("h%d", heading)
				}
				if numbered && heading == 0 {
					out.WriteString("<p>• " + para.String() + "</p>")
					continue
				}
				out.WriteString("<" + tag + ">" + para.String() + "</" + tag + ">")
			}
		case xml.CharData:
			if inPara && inText {
				para.WriteString(html.EscapeString(string(t)))
			}
		}
	}

	return out.String(), nil
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// headingLevel maps paragraph styles such as "Heading2" or "Title" to a
// heading level, or 0 for body text.
func headingLevel(style string) int {
	s := strings.ToLower(style)
	if s == "title" {
		return 1
	}
	if strings.HasPrefix(s, "heading") && len(s) == len("heading")+1 {
		if d := s[len(s)-1]; d >= '1' && d <= '6' {
			return int(d - '0')
		}
	}
	return 0
}
