package request

import (
	"fmt"

	"github.com/reusedev/mockup-hub/internal/consts"
)

type Sampling struct {
	Temperature *float64 `json:"temperature"`
	TopK        *int     `json:"top_k"`
	TopP        *float64 `json:"top_p"`
	Seed        *int64   `json:"seed"`
}

type Generate struct {
	ImageId     int       `json:"image_id"`
	Mediums     []string  `json:"mediums"`      // empty means the current selection
	AspectRatio string    `json:"aspect_ratio"` // empty means the current ratio
	Sampling    *Sampling `json:"sampling"`     // nil means the current config
}

func (g *Generate) Valid() error {
	if g.ImageId <= 0 {
		return fmt.Errorf("invalid image_id: %d, must be greater than 0", g.ImageId)
	}
	for _, m := range g.Mediums {
		if !consts.Medium(m).Valid() {
			return fmt.Errorf("unknown medium: %s", m)
		}
	}
	if g.AspectRatio != "" && !consts.AspectRatio(g.AspectRatio).Valid() {
		return fmt.Errorf("unknown aspect ratio: %s", g.AspectRatio)
	}
	return nil
}

type Retry struct {
	Mediums []string `json:"mediums"` // empty means every failed medium
}

func (r *Retry) Valid() error {
	for _, m := range r.Mediums {
		if !consts.Medium(m).Valid() {
			return fmt.Errorf("unknown medium: %s", m)
		}
	}
	return nil
}

type Selection struct {
	Mediums []string `json:"mediums"`
}

func (s *Selection) Valid() error {
	for _, m := range s.Mediums {
		if !consts.Medium(m).Valid() {
			return fmt.Errorf("unknown medium: %s", m)
		}
	}
	return nil
}
