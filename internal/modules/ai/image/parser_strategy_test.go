package image

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdownURLStrategy(t *testing.T) {
	s := &MarkdownURLStrategy{}

	t.Run("chat completion content", func(t *testing.T) {
		body := `{"choices":[{"message":{"content":"Here you go:\n\n![mockup](https://cdn.example.com/out/abc.png)"}}]}`
		urls, err := s.ExtractURLs([]byte(body))
		require.NoError(t, err)
		require.Equal(t, []string{"https://cdn.example.com/out/abc.png"}, urls)
	})

	t.Run("multiple images", func(t *testing.T) {
		body := `{"choices":[{"message":{"content":"![a](https://example.com/1.png) and ![b](https://example.com/2.png)"}}]}`
		urls, err := s.ExtractURLs([]byte(body))
		require.NoError(t, err)
		require.Equal(t, []string{"https://example.com/1.png", "https://example.com/2.png"}, urls)
	})

	t.Run("escaped ampersand", func(t *testing.T) {
		body := `![img](https://example.com/x.png?a=1&b=2)`
		urls, err := s.ExtractURLs([]byte(body))
		require.NoError(t, err)
		require.Equal(t, []string{"https://example.com/x.png?a=1&b=2"}, urls)
	})

	t.Run("no image in content", func(t *testing.T) {
		body := `{"choices":[{"message":{"content":"I cannot generate that image."}}]}`
		urls, err := s.ExtractURLs([]byte(body))
		require.NoError(t, err)
		require.Empty(t, urls)
	})
}

func TestOpenAIURLStrategy(t *testing.T) {
	s := &OpenAIURLStrategy{}

	urls, err := s.ExtractURLs([]byte(`{"created":1690000000,"data":[{"url":"https://example.com/a.png"},{"url":"https://example.com/b.png"}]}`))
	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/a.png", "https://example.com/b.png"}, urls)

	urls, err = s.ExtractURLs([]byte(`{"data":[]}`))
	require.NoError(t, err)
	require.Empty(t, urls)
}

func TestGenericB64Strategy(t *testing.T) {
	s := &GenericB64Strategy{}

	t.Run("openai images dialect", func(t *testing.T) {
		b64s, err := s.ExtractB64s([]byte(`{"data":[{"b64_json":"aGVsbG8="}]}`))
		require.NoError(t, err)
		require.Equal(t, []string{"aGVsbG8="}, b64s)
	})

	t.Run("data url inside chat content", func(t *testing.T) {
		body := `{"choices":[{"message":{"content":"![img](data:image/png;base64,aGVsbG8=)"}}]}`
		b64s, err := s.ExtractB64s([]byte(body))
		require.NoError(t, err)
		require.Equal(t, []string{"aGVsbG8="}, b64s)
	})

	t.Run("no image", func(t *testing.T) {
		b64s, err := s.ExtractB64s([]byte(`{"choices":[{"message":{"content":"sorry"}}]}`))
		require.NoError(t, err)
		require.Empty(t, b64s)
	})
}

func TestGenericParser_Parse(t *testing.T) {
	parser := NewGenericParser(&MarkdownURLStrategy{}, &GenericB64Strategy{})

	t.Run("markdown url response", func(t *testing.T) {
		body := `{"choices":[{"message":{"content":"![mockup](https://example.com/mug.png)"}}]}`
		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}
		response := &BaseResponse{Supplier: "geek", Model: "gemini-2.5-flash-image"}
		require.NoError(t, parser.Parse(resp, response))
		require.True(t, response.Succeed())
		require.Equal(t, []string{"https://example.com/mug.png"}, response.URLs)
		require.NoError(t, response.GetError())
	})

	t.Run("ok status without image", func(t *testing.T) {
		body := `{"choices":[{"message":{"content":"refused"}}]}`
		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}
		response := &BaseResponse{Supplier: "geek", Model: "gemini-2.5-flash-image"}
		require.NoError(t, parser.Parse(resp, response))
		require.False(t, response.Succeed())
		require.ErrorIs(t, response.GetError(), NoImageError)
	})

	t.Run("non-ok status", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: 429,
			Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"quota exceeded"}}`)),
		}
		response := &BaseResponse{Supplier: "tuzi", Model: "gpt-image-1"}
		require.NoError(t, parser.Parse(resp, response))
		require.False(t, response.Succeed())
		require.ErrorIs(t, response.GetError(), StatusCodeError)
		require.Equal(t, 429, response.StatusCode)
	})
}
