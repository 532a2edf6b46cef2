package image

import (
	"io"

	"github.com/reusedev/mockup-hub/internal/consts"
)

type Request interface {
	BodyContentType(supplier consts.ModelSupplier) (io.Reader, string, error)
	Path(supplier consts.ModelSupplier) string
	InitResponse(supplier string, tokenDesc string) Response
}

// SamplingConfig carries the model's creativity parameters. Nil fields are
// omitted from the request body and left to supplier defaults.
type SamplingConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
	TopK        *int     `json:"top_k,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	Seed        *int64   `json:"seed,omitempty"`
}
