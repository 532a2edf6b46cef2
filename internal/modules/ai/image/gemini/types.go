package gemini

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
)

type FlashMockupRequest struct {
	Model       string               `json:"model"`
	ImageBytes  [][]byte             `json:"image_bytes"`
	Prompt      string               `json:"prompt"`
	AspectRatio consts.AspectRatio   `json:"aspect_ratio"`
	Sampling    image.SamplingConfig `json:"sampling"`
}

func (f *FlashMockupRequest) BodyContentType(supplier consts.ModelSupplier) (io.Reader, string, error) {
	content := []map[string]interface{}{
		{
			"type": "text",
			"text": f.Prompt,
		},
	}
	for _, img := range f.ImageBytes {
		imageByte := base64.StdEncoding.EncodeToString(img)
		content = append(content, map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]string{
				"url": "data:image/png;base64," + imageByte,
			},
		})
	}
	body := make(map[string]any)
	body["model"] = f.Model
	body["stream"] = false
	body["messages"] = []map[string]interface{}{
		{
			"role":    "user",
			"content": content,
		},
	}
	if f.AspectRatio != "" {
		body["aspect_ratio"] = f.AspectRatio.String()
	}
	generationConfig := make(map[string]any)
	if f.Sampling.Temperature != nil {
		generationConfig["temperature"] = *f.Sampling.Temperature
	}
	if f.Sampling.TopK != nil {
		generationConfig["top_k"] = *f.Sampling.TopK
	}
	if f.Sampling.TopP != nil {
		generationConfig["top_p"] = *f.Sampling.TopP
	}
	if f.Sampling.Seed != nil {
		generationConfig["seed"] = *f.Sampling.Seed
	}
	if len(generationConfig) > 0 {
		body["generation_config"] = generationConfig
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(data), "application/json", nil
}

func (f *FlashMockupRequest) Path(supplier consts.ModelSupplier) string {
	return "v1/chat/completions"
}

func (f *FlashMockupRequest) InitResponse(supplier string, tokenDesc string) image.Response {
	return &FlashMockupResponse{
		BaseResponse: image.BaseResponse{
			Supplier:  supplier,
			TokenDesc: tokenDesc,
			Model:     f.Model,
			URLs:      []string{},
		},
	}
}

type FlashMockupResponse struct {
	image.BaseResponse
}
