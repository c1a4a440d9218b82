package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Trivernis/uwucodec/pkg/codec"
)

func TestReadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte(`current-profile: lines
profiles:
  - name: compat
  - name: lines
    chunk-size: 4096
    boundary: newline
    policy: strict
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "lines", cfg.CurrentProfile)
	require.Len(t, cfg.Profiles, 2)
	require.Equal(t, path, cfg.Path())

	p := cfg.Profiles[1]
	require.Equal(t, "lines", p.Name)
	require.Equal(t, 4096, p.ChunkSize)
	require.Equal(t, codec.BoundaryNewline, p.Boundary)
	require.Equal(t, codec.Strict, p.Policy)

	require.Zero(t, cfg.Profiles[0].ChunkSize)
	require.Empty(t, cfg.Profiles[0].Boundary)
}

func TestReadConfig_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(`current-profile = "joined"

[[profiles]]
name = "joined"
chunk-size = 512
boundary = "space"
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "joined", cfg.CurrentProfile)
	require.Len(t, cfg.Profiles, 1)
	require.Equal(t, 512, cfg.Profiles[0].ChunkSize)
	require.Equal(t, codec.BoundarySpace, cfg.Profiles[0].Boundary)
	require.Empty(t, cfg.Profiles[0].Policy)
}

func TestReadConfig_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Profiles)
}

func TestReadConfig_InvalidProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte(`profiles:
  - name: broken
    policy: sloppy
`), 0644)
	require.NoError(t, err)

	_, err = ReadConfig(path)
	require.ErrorContains(t, err, `profile "broken": policy must be one of`)
}

func TestReadConfig_ExplicitPathMustExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	for _, name := range []string{"config", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, nil, 0644))

			cfg, err := ReadConfig(path)
			require.NoError(t, err)
			cfg.Profiles = append(cfg.Profiles, &Profile{
				Name:      "lines",
				ChunkSize: 2048,
				Boundary:  codec.BoundaryNewline,
				Policy:    codec.Lenient,
			})
			require.NoError(t, cfg.SetCurrentProfile("lines"))

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())

			reread, err := ReadConfig(path)
			require.NoError(t, err)
			require.Equal(t, "lines", reread.CurrentProfile)
			require.Equal(t, cfg.Profiles, reread.Profiles)
		})
	}
}

func TestHasProfile(t *testing.T) {
	cfg := Config{
		Profiles: []*Profile{
			{Name: "a"},
			{Name: "b"},
		},
	}
	require.True(t, cfg.HasProfile("a"))
	require.True(t, cfg.HasProfile("b"))
	require.False(t, cfg.HasProfile("c"))
}

func TestActiveProfile(t *testing.T) {
	cfg := Config{
		CurrentProfile: "strict",
		Profiles: []*Profile{
			{Name: "compat"},
			{Name: "strict", Policy: codec.Strict},
		},
	}

	p := cfg.ActiveProfile()
	require.NotNil(t, p)
	require.Equal(t, "strict", p.Name)

	// Mutating the returned profile does not touch the config.
	p.Policy = codec.Lenient
	require.Equal(t, codec.Strict, cfg.Profiles[1].Policy)

	// ProfileOverride takes precedence.
	cfg.ProfileOverride = "compat"
	p = cfg.ActiveProfile()
	require.NotNil(t, p)
	require.Equal(t, "compat", p.Name)
}

func TestActiveProfile_NotFound(t *testing.T) {
	cfg := Config{
		CurrentProfile: "missing",
		Profiles:       []*Profile{{Name: "other"}},
	}
	require.Nil(t, cfg.ActiveProfile())
}

func TestSetCurrentProfile_Unknown(t *testing.T) {
	cfg := Config{Profiles: []*Profile{{Name: "a"}}}
	require.ErrorContains(t, cfg.SetCurrentProfile("b"), "could not find profile")
	require.Empty(t, cfg.CurrentProfile)
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{name: "empty", profile: Profile{Name: "x"}},
		{name: "full", profile: Profile{Name: "x", ChunkSize: 10, Boundary: codec.BoundarySpace, Policy: codec.Strict}},
		{name: "negative chunk", profile: Profile{Name: "x", ChunkSize: -1}, wantErr: "chunk-size"},
		{name: "huge chunk", profile: Profile{Name: "x", ChunkSize: MaxChunkSize + 1}, wantErr: "chunk-size"},
		{name: "bad boundary", profile: Profile{Name: "x", Boundary: "tab"}, wantErr: "boundary must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
