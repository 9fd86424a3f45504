package feed

import (
	"bytes"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// scanBareThumbnails walks the raw document and returns, per item or entry
// in document order, the url of its first thumbnail element of any
// namespace. It returns nil when the document cannot be walked.
func scanBareThumbnails(data []byte) []string {
	p := xpp.NewXMLPullParser(bytes.NewReader(data), false, charset.NewReaderLabel)

	var thumbs []string
	depth := 0 // element depth inside the current item, 0 outside

	for {
		event, err := p.Next()
		if err != nil {
			return nil
		}

		switch event {
		case xpp.EndDocument:
			return thumbs
		case xpp.StartTag:
			if depth > 0 {
				depth++
				last := len(thumbs) - 1
				if p.Name == thumbnailElement && thumbs[last] == "" {
					thumbs[last] = strings.TrimSpace(p.Attribute("url"))
				}
				continue
			}
			if p.Name == "item" || p.Name == "entry" {
				thumbs = append(thumbs, "")
				depth = 1
			}
		case xpp.EndTag:
			if depth > 0 {
				depth--
			}
		}
	}
}
