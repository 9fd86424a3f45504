package chat

import (
	"fmt"

	"github.com/tidwall/gjson"

	apperrors "github.com/lysyi3m/newsdesk/app/errors"
)

// gjson paths of the search response
const (
	PathAnswer     = "answer"
	PathSourceData = "source_data"
	PathSourceURL  = "url"
	PathHeadline   = "headline"
)

// Response is the search payload with every field optional. Answer is nil
// when absent or falsy; HasSources is set only for a non-empty source array.
type Response struct {
	Answer     *string
	Sources    []Source
	HasSources bool
}

// Decode reads a search response body. Only a body that is not JSON at all
// fails; every other shape degrades to fallbacks.
func Decode(body []byte) (Response, error) {
	if !gjson.ValidBytes(body) {
		return Response{}, apperrors.NewMalformedPayloadError(fmt.Errorf("response body is not valid JSON"))
	}

	parsed := gjson.ParseBytes(body)

	var resp Response
	if answer := parsed.Get(PathAnswer); truthy(answer) {
		text := answer.String()
		resp.Answer = &text
	}

	sourceData := parsed.Get(PathSourceData)
	if sourceData.IsArray() {
		entries := sourceData.Array()
		if len(entries) > 0 {
			resp.HasSources = true
			resp.Sources = make([]Source, 0, len(entries))
			for _, entry := range entries {
				resp.Sources = append(resp.Sources, decodeSource(entry))
			}
		}
	}

	return resp, nil
}

func decodeSource(entry gjson.Result) Source {
	source := Source{URL: FallbackURL, Headline: FallbackHeadline}
	if !entry.IsObject() {
		return source
	}

	if url := entry.Get(PathSourceURL); truthy(url) {
		source.URL = url.String()
	}
	if headline := entry.Get(PathHeadline); truthy(headline) {
		source.Headline = headline.String()
	}

	return source
}

// truthy reports whether a field carries a usable value; missing, null,
// false, 0 and "" do not.
func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}

	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return true
	}
}

// Present builds the bot message for a decoded response.
func Present(resp Response) Message {
	msg := Message{Role: RoleBot, Content: FallbackAnswer}
	if resp.Answer != nil {
		msg.Content = *resp.Answer
	}

	if resp.HasSources {
		msg.Sources = append([]Source(nil), resp.Sources...)
	}

	return msg
}

// PresentBody decodes and presents a raw body in one step.
func PresentBody(body []byte) (Message, error) {
	resp, err := Decode(body)
	if err != nil {
		return Message{}, err
	}
	return Present(resp), nil
}
