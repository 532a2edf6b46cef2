package preset

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
	"github.com/reusedev/mockup-hub/internal/modules/store"
)

// StorageKey is the single key the preset list lives under. Flat list, no
// schema versioning.
const StorageKey = "mockup-hub:presets"

type Bundle struct {
	Id          string               `json:"id"`
	Name        string               `json:"name"`
	Mediums     []consts.Medium      `json:"mediums"`
	AspectRatio consts.AspectRatio   `json:"aspect_ratio"`
	Sampling    image.SamplingConfig `json:"sampling"`
	CreatedAt   time.Time            `json:"created_at"`
}

type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type Manager struct {
	kv KV
}

func NewManager(kv KV) *Manager {
	return &Manager{kv: kv}
}

func (m *Manager) List() ([]Bundle, error) {
	raw, ok, err := m.kv.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []Bundle{}, nil
	}
	var bundles []Bundle
	if err := jsoniter.UnmarshalFromString(raw, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (m *Manager) Save(name string, mediums []consts.Medium, aspect consts.AspectRatio, sampling image.SamplingConfig) (Bundle, error) {
	bundles, err := m.List()
	if err != nil {
		return Bundle{}, err
	}
	bundle := Bundle{
		Id:          uuid.New().String(),
		Name:        name,
		Mediums:     append([]consts.Medium(nil), mediums...),
		AspectRatio: aspect,
		Sampling:    sampling,
		CreatedAt:   time.Now(),
	}
	bundles = append(bundles, bundle)
	if err := m.persist(bundles); err != nil {
		return Bundle{}, err
	}
	return bundle, nil
}

func (m *Manager) Delete(id string) error {
	bundles, err := m.List()
	if err != nil {
		return err
	}
	kept := bundles[:0]
	for _, b := range bundles {
		if b.Id != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bundles) {
		return fmt.Errorf("preset not found: %s", id)
	}
	return m.persist(kept)
}

// Load overwrites the current selection, aspect ratio and sampling config
// entirely. Never a merge.
func (m *Manager) Load(id string, st *store.Store) (Bundle, error) {
	bundles, err := m.List()
	if err != nil {
		return Bundle{}, err
	}
	for _, b := range bundles {
		if b.Id == id {
			st.SetSelection(b.Mediums)
			st.SetAspectRatio(b.AspectRatio)
			st.SetSampling(b.Sampling)
			return b, nil
		}
	}
	return Bundle{}, fmt.Errorf("preset not found: %s", id)
}

func (m *Manager) persist(bundles []Bundle) error {
	raw, err := jsoniter.MarshalToString(bundles)
	if err != nil {
		return err
	}
	return m.kv.Set(StorageKey, raw)
}
