package litetable

import (
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestDir(t *testing.T) {
	tests := map[string]struct {
		home     string
		override string
		want     string
	}{
		"home directory": {
			home: "/home/basho",
			want: filepath.Join("/home/basho", ".litetable"),
		},
		"override wins": {
			home:     "/home/basho",
			override: "/srv/runs/",
			want:     "/srv/runs",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HOME", tc.home)
			t.Setenv(HomeEnv, tc.override)
			req := require.New(t)

			got, err := Dir()
			req.NoError(err)
			req.Equal(tc.want, got)
		})
	}
}
