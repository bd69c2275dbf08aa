package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/logging"
)

func TestNewRequiresContent(t *testing.T) {
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelError})
	_, err := New(testConfig(), nil, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")
}

func TestContentChangeReloads(t *testing.T) {
	s := newTestServer(t, testConfig())

	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: Replaced Person\n"), 0o644))

	s.handleContentChange(path)
	assert.Equal(t, "Replaced Person", s.Content().Name)
}

func TestContentChangeKeepsPreviousOnBrokenEdit(t *testing.T) {
	s := newTestServer(t, testConfig())
	before := s.Content().Name

	path := filepath.Join(t.TempDir(), "content.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0o644))

	s.handleContentChange(path)
	assert.Equal(t, before, s.Content().Name)
}

func TestBroadcastReloadNonBlocking(t *testing.T) {
	s := newTestServer(t, testConfig())

	// Nothing reads the broadcast channel here; the send must not block
	// beyond the channel buffer.
	for i := 0; i < 100; i++ {
		s.broadcastReload()
	}
}
