package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCase(t *testing.T) {
	c, err := DefaultCase()
	require.NoError(t, err)

	require.Equal(t, "manor", c.ShortName)
	require.Equal(t, 2, c.MinSupport)
	require.Equal(t, "Entrance Hall", c.Entry.Name)
	require.Equal(t, "Living Room", c.Entry.Left.Name)
	require.Equal(t, "Kitchen", c.Entry.Right.Name)
	require.Nil(t, c.Entry.Right.Left)
	require.Equal(t, "Bathroom", c.Entry.Left.Left.Left.Name)
	require.Len(t, c.Clues, 7)
	require.Equal(t, []string{"Carlos", "Camila", "Cris"}, c.SuspectNames())
}

func TestParseCase(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, c *Case)
	}{
		{
			name: "defaults min support",
			yaml: "title: Tiny\nentry:\n  name: Hall\n",
			check: func(t *testing.T, c *Case) {
				require.Equal(t, DefaultMinSupport, c.MinSupport)
				require.Empty(t, c.Entry.Clue)
			},
		},
		{
			name: "keeps explicit min support",
			yaml: "entry:\n  name: Hall\nmin_support: 3\n",
			check: func(t *testing.T, c *Case) {
				require.Equal(t, 3, c.MinSupport)
			},
		},
		{
			name:    "missing entry",
			yaml:    "title: Nowhere\n",
			wantErr: true,
		},
		{
			name:    "negative min support",
			yaml:    "entry:\n  name: Hall\nmin_support: -1\n",
			wantErr: true,
		},
		{
			name:    "assignment without suspect",
			yaml:    "entry:\n  name: Hall\nclues:\n  - clue: A\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			yaml:    "entry:\n  name: Hall\n  up:\n    name: Attic\n",
			wantErr: true,
		},
		{
			name:    "empty document",
			yaml:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCase([]byte(tt.yaml))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCase)
				require.Nil(t, c)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestLoadCaseAndListCases(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cellar.yaml"), []byte("entry:\n  name: Cellar\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a case"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.yaml"), 0o755))

	c, err := LoadCase(filepath.Join(dir, "cellar.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Cellar", c.Entry.Name)

	_, err = LoadCase(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	names, err := ListCases(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"cellar"}, names)

	names, err = ListCases(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	require.Empty(t, names)
}
