package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("LANEWATCH_TEST_DIR", "/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain path", input: "/var/lib/lanewatch.db", want: "/var/lib/lanewatch.db"},
		{name: "tilde prefix", input: "~/orders.csv", want: filepath.Join(home, "orders.csv")},
		{name: "bare tilde", input: "~", want: home},
		{name: "env var", input: "$LANEWATCH_TEST_DIR/orders.csv", want: "/data/orders.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	p := DefaultDatabasePath()
	assert.True(t, strings.HasSuffix(p, filepath.Join("lanewatch", "lanewatch.db")))
}
