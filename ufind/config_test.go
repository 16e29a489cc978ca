package ufind

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "depth", want: StrategyDepthFirst},
		{in: "Depth-First", want: StrategyDepthFirst},
		{in: "waves", want: StrategyWaves},
		{in: " lists ", want: StrategyWaves},
		{in: "sideways", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParseStrategy(got.String())))
		})
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, byte('\n'), cfg.Separator)
	assert.Equal(t, MaxPathLen, cfg.MaxPathLen)
	assert.False(t, cfg.OneFileSystem)
	assert.Equal(t, StrategyDepthFirst, cfg.Strategy)

	f := New(Config{})
	defer f.Close()
	assert.Equal(t, MaxPathLen, f.cfg.MaxPathLen)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want Kind
	}{
		{0o644, KindRegular},
		{fs.ModeDir | 0o755, KindDirectory},
		{fs.ModeSymlink, KindSymlink},
		{fs.ModeDevice | fs.ModeCharDevice, KindCharDevice},
		{fs.ModeDevice, KindBlockDevice},
		{fs.ModeNamedPipe, KindFIFO},
		{fs.ModeSocket, KindSocket},
		{fs.ModeIrregular, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.mode))
		})
	}
}

func TestChildPath(t *testing.T) {
	p, err := childPath("/", "etc", MaxPathLen)
	require.NoError(t, err)
	assert.Equal(t, "/etc", p)

	p, err = childPath("/usr", "lib", MaxPathLen)
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib", p)

	_, err = childPath("/usr", "lib", len("/usr/li"))
	assert.ErrorIs(t, err, ErrPathTooLong)
}
