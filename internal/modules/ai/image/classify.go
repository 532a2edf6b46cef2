package image

import (
	"errors"
	"net/http"
	"strings"

	"github.com/reusedev/mockup-hub/internal/consts"
)

var (
	PromptError     = errors.New("the safety system flagged the prompt or image")
	NoImageError    = errors.New("no image extracted from response")
	StatusCodeError = errors.New("http status code not 200")
)

// Relay suppliers surface failures as coarse string markers: numeric code
// substrings plus a handful of known phrases. Boundary contract, keep the
// markers bit-for-bit.
var classifyMarkers = []struct {
	kind    consts.FailureKind
	markers []string
}{
	{consts.FailureRateLimit, []string{"429", "RESOURCE_EXHAUSTED", "rate limit"}},
	{consts.FailureAuth, []string{"401", "403", "PERMISSION_DENIED", "permission", "invalid api key"}},
	{consts.FailureSafety, []string{"SAFETY", "safety system", "content policy", "图片检测系统认为内容可能违反相关政策"}},
	{consts.FailureServer, []string{"503", "500", "UNAVAILABLE", "server is overloaded"}},
	{consts.FailureBadRequest, []string{"400", "INVALID_ARGUMENT"}},
}

// ClassifyFailure maps a failed response to a display kind by substring
// matching on the status code and body.
func ClassifyFailure(response Response) consts.FailureKind {
	if response.Succeed() {
		return ""
	}
	if errors.Is(response.GetError(), NoImageError) {
		return consts.FailureEmptyResponse
	}
	haystack := response.GetRespBody()
	if response.GetStatusCode() != 0 && response.GetStatusCode() != http.StatusOK {
		haystack += " " + http.StatusText(response.GetStatusCode()) + " " + statusMarker(response.GetStatusCode())
	}
	if err := response.GetError(); err != nil {
		haystack += " " + err.Error()
	}
	for _, c := range classifyMarkers {
		for _, marker := range c.markers {
			if strings.Contains(haystack, marker) {
				return c.kind
			}
		}
	}
	if response.GetStatusCode() == http.StatusOK && len(response.GetURLs()) == 0 && len(response.GetB64s()) == 0 {
		return consts.FailureEmptyResponse
	}
	return consts.FailureUnknown
}

func statusMarker(code int) string {
	switch code {
	case http.StatusTooManyRequests:
		return "429"
	case http.StatusUnauthorized:
		return "401"
	case http.StatusForbidden:
		return "403"
	case http.StatusBadRequest:
		return "400"
	case http.StatusInternalServerError:
		return "500"
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return "503"
	default:
		return ""
	}
}

var (
	safetyPhrases = []string{
		"图片检测系统认为内容可能违反相关政策",
		"输入的提示词或视频的输出内容违反了OpenAI的相关服务政策，请调整提示词后进行重试",
		"Your request may contain content that is not allowed by our safety system. Please try change the prompt and image.",
	}
)

func DetectError(response Response, body string) error {
	if response.Succeed() {
		return nil
	}
	for _, phrase := range safetyPhrases {
		if strings.Contains(body, phrase) {
			return PromptError
		}
	}
	if response.GetStatusCode() != http.StatusOK {
		return StatusCodeError
	}
	if len(response.GetURLs()) == 0 && len(response.GetB64s()) == 0 {
		return NoImageError
	}
	return nil
}
