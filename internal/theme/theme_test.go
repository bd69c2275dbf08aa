package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	value string
	ok    bool
	saved []string
}

func (f *fakeStore) Load() (string, bool) { return f.value, f.ok }
func (f *fakeStore) Save(v string)        { f.saved = append(f.saved, v) }

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Theme
		valid bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{"", "", false},
		{"auto", "", false},
		{"DARK", "", false},
		{"solarized", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStoredPreferenceWins(t *testing.T) {
	store := &fakeStore{value: "dark", ok: true}
	c := NewController(
		WithStore(store),
		WithSystemPreference(func() bool { return false }),
	)

	assert.Equal(t, Dark, c.Resolve())
	assert.Equal(t, SourceStored, c.Source())
}

func TestResolveInvalidStoredFallsBackToSystem(t *testing.T) {
	store := &fakeStore{value: "garbage", ok: true}
	c := NewController(
		WithStore(store),
		WithSystemPreference(func() bool { return true }),
	)

	assert.Equal(t, Dark, c.Resolve())
	assert.Equal(t, SourceSystem, c.Source())
	// The resolved value is persisted.
	require.NotEmpty(t, store.saved)
	assert.Equal(t, "dark", store.saved[len(store.saved)-1])
}

func TestResolveNoStoreNoSystemDefaultsLight(t *testing.T) {
	c := NewController()
	assert.Equal(t, Light, c.Resolve())
	assert.Equal(t, SourceFallback, c.Source())
}

func TestResolveOnlyOnce(t *testing.T) {
	calls := 0
	c := NewController(WithSystemPreference(func() bool {
		calls++
		return true
	}))

	assert.Equal(t, Dark, c.Resolve())
	assert.Equal(t, Dark, c.Resolve())
	assert.Equal(t, 1, calls)
}

func TestTogglePersistsAndApplies(t *testing.T) {
	store := &fakeStore{}
	var applied []Theme
	c := NewController(
		WithStore(store),
		WithApply(func(th Theme) { applied = append(applied, th) }),
	)

	assert.Equal(t, Light, c.Resolve())
	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, Dark, c.Current())

	require.Len(t, store.saved, 2)
	assert.Equal(t, []string{"light", "dark"}, store.saved)
	assert.Equal(t, []Theme{Light, Dark}, applied)
}

func TestDoubleToggleRoundTrips(t *testing.T) {
	c := NewController(WithStore(&fakeStore{value: "dark", ok: true}))

	initial := c.Resolve()
	c.Toggle()
	assert.Equal(t, initial, c.Toggle())
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Dark, Light.Opposite())
	assert.Equal(t, Light, Dark.Opposite())
}
