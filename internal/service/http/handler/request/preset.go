package request

import "fmt"

type SavePreset struct {
	Name string `json:"name"`
}

func (s *SavePreset) Valid() error {
	if s.Name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	return nil
}
