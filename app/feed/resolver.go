package feed

import (
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

// DefaultImageURL is shown when an item carries no usable image.
const DefaultImageURL = "https://placehold.co/600x400?text=News"

const thumbnailElement = "thumbnail"

// ResolveImage picks the card image for an item. Explicit thumbnail metadata
// wins over an img inferred from the description markup. bareThumbnail is the
// url of an unprefixed thumbnail element, which gofeed does not keep.
func ResolveImage(item *gofeed.Item, bareThumbnail string, description *Fragment) string {
	if item != nil {
		if url := thumbnailURL(item.Extensions); url != "" {
			return url
		}
	}

	if url := strings.TrimSpace(bareThumbnail); url != "" {
		return url
	}

	if src := description.FirstImageSrc(); src != "" {
		return src
	}

	return DefaultImageURL
}

// thumbnailURL looks for a thumbnail element in any extension namespace,
// media first, descending into groups such as media:group.
func thumbnailURL(extensions ext.Extensions) string {
	if len(extensions) == 0 {
		return ""
	}

	prefixes := make([]string, 0, len(extensions))
	for prefix := range extensions {
		if prefix != "media" {
			prefixes = append(prefixes, prefix)
		}
	}
	sort.Strings(prefixes)
	if _, ok := extensions["media"]; ok {
		prefixes = append([]string{"media"}, prefixes...)
	}

	for _, prefix := range prefixes {
		if url := findThumbnail(extensions[prefix]); url != "" {
			return url
		}
	}

	return ""
}

func findThumbnail(elements map[string][]ext.Extension) string {
	for _, e := range elements[thumbnailElement] {
		if url := strings.TrimSpace(e.Attrs["url"]); url != "" {
			return url
		}
	}

	names := make([]string, 0, len(elements))
	for name := range elements {
		if name != thumbnailElement {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		for _, e := range elements[name] {
			if url := findThumbnail(e.Children); url != "" {
				return url
			}
		}
	}

	return ""
}
