package image

import (
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type URLParseStrategy interface {
	ExtractURLs(body []byte) ([]string, error)
}

type B64ParseStrategy interface {
	ExtractB64s(body []byte) ([]string, error)
}

type MarkdownURLStrategy struct{}

func (m *MarkdownURLStrategy) ExtractURLs(body []byte) ([]string, error) {
	var urls []string
	var content string

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := jsoniter.Unmarshal(body, &chatResp); err == nil && len(chatResp.Choices) > 0 {
		content = chatResp.Choices[0].Message.Content
	} else {
		content = string(body)
	}

	markdownReg := `!\[.*?\]\((https?://[^)]+)\)`
	pattern, _ := regexp.Compile(markdownReg)
	matches := pattern.FindAllStringSubmatch(content, -1)
	for _, match := range matches {
		if len(match) >= 2 {
			url := match[1]
			url = strings.ReplaceAll(url, "\\u0026", "&")
			urls = append(urls, url)
		}
	}
	return urls, nil
}

type OpenAIURLStrategy struct{}

func (o *OpenAIURLStrategy) ExtractURLs(body []byte) ([]string, error) {
	var ret struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	err := jsoniter.Unmarshal(body, &ret)
	if err != nil {
		return nil, err
	}
	var urls []string
	for _, d := range ret.Data {
		if d.URL != "" {
			urls = append(urls, d.URL)
		}
	}
	return urls, nil
}

type GenericB64Strategy struct{}

func (m *GenericB64Strategy) ExtractB64s(body []byte) ([]string, error) {
	var b64s []string

	// openai images dialect
	var ret struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
	}
	if err := jsoniter.Unmarshal(body, &ret); err == nil {
		for _, d := range ret.Data {
			if d.B64JSON != "" {
				b64s = append(b64s, d.B64JSON)
			}
		}
	}
	if len(b64s) > 0 {
		return b64s, nil
	}

	// inline data URLs inside chat content
	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	content := string(body)
	if err := jsoniter.Unmarshal(body, &chatResp); err == nil && len(chatResp.Choices) > 0 {
		content = chatResp.Choices[0].Message.Content
	}
	dataURLReg := `data:image/[a-z]+;base64,([A-Za-z0-9+/=]+)`
	pattern, _ := regexp.Compile(dataURLReg)
	matches := pattern.FindAllStringSubmatch(content, -1)
	for _, match := range matches {
		if len(match) >= 2 {
			b64s = append(b64s, match[1])
		}
	}
	return b64s, nil
}
