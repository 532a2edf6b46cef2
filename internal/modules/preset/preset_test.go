package preset

import (
	"testing"

	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
	"github.com/reusedev/mockup-hub/internal/modules/store"
	"github.com/stretchr/testify/require"
)

type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func TestManagerListEmpty(t *testing.T) {
	m := NewManager(newMemoryKV())
	bundles, err := m.List()
	require.NoError(t, err)
	require.Empty(t, bundles)
}

func TestManagerSaveAndList(t *testing.T) {
	m := NewManager(newMemoryKV())

	first, err := m.Save("campaign-a", []consts.Medium{consts.MediumMug, consts.MediumBillboard}, consts.AspectLandscape, image.SamplingConfig{})
	require.NoError(t, err)
	require.NotEmpty(t, first.Id)

	second, err := m.Save("campaign-b", []consts.Medium{consts.MediumTShirt}, consts.AspectSquare, image.SamplingConfig{})
	require.NoError(t, err)
	require.NotEqual(t, first.Id, second.Id)

	bundles, err := m.List()
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	require.Equal(t, "campaign-a", bundles[0].Name)
	require.Equal(t, []consts.Medium{consts.MediumMug, consts.MediumBillboard}, bundles[0].Mediums)
	require.Equal(t, consts.AspectLandscape, bundles[0].AspectRatio)
	require.Equal(t, "campaign-b", bundles[1].Name)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(newMemoryKV())
	b, err := m.Save("keep", []consts.Medium{consts.MediumMug}, consts.AspectSquare, image.SamplingConfig{})
	require.NoError(t, err)
	gone, err := m.Save("drop", []consts.Medium{consts.MediumPoster}, consts.AspectSquare, image.SamplingConfig{})
	require.NoError(t, err)

	require.NoError(t, m.Delete(gone.Id))

	bundles, err := m.List()
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	require.Equal(t, b.Id, bundles[0].Id)

	require.Error(t, m.Delete("no-such-id"))
}

func TestManagerLoadOverwritesConfig(t *testing.T) {
	m := NewManager(newMemoryKV())
	temp := float64(0.4)
	saved, err := m.Save("truck-run",
		[]consts.Medium{consts.MediumTShirt, consts.MediumTruck},
		consts.AspectPortrait,
		image.SamplingConfig{Temperature: &temp})
	require.NoError(t, err)

	st := store.New()
	st.SetSelection([]consts.Medium{consts.MediumMug})
	st.SetAspectRatio(consts.AspectSquare)

	loaded, err := m.Load(saved.Id, st)
	require.NoError(t, err)
	require.Equal(t, saved.Id, loaded.Id)

	// load replaces, never merges
	require.Equal(t, []consts.Medium{consts.MediumTShirt, consts.MediumTruck}, st.Selection())
	require.Equal(t, consts.AspectPortrait, st.AspectRatio())
	require.NotNil(t, st.Sampling().Temperature)
	require.Equal(t, 0.4, *st.Sampling().Temperature)
}

func TestManagerLoadUnknownId(t *testing.T) {
	m := NewManager(newMemoryKV())
	_, err := m.Load("missing", store.New())
	require.Error(t, err)
}
