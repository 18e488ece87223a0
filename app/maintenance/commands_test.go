package maintenance

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogcomments/app/models"
	"blogcomments/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommands(t *testing.T, input string) (*Commands, *bytes.Buffer) {
	t.Helper()
	tmpDir := t.TempDir()
	out := &bytes.Buffer{}
	return &Commands{
		DBPath:    filepath.Join(tmpDir, "badger"),
		BackupDir: filepath.Join(tmpDir, "backups"),
		In:        strings.NewReader(input),
		Out:       out,
	}, out
}

func TestHandleCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedExit   int
	}{
		{
			name:           "no arguments",
			args:           []string{},
			expectedOutput: "Usage: blogcomments db <command>",
			expectedExit:   1,
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage: blogcomments db <command>",
			expectedExit:   0,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedOutput: "Unknown db command: unknown",
			expectedExit:   1,
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedOutput: "Error: backup file path required for restore",
			expectedExit:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, out := setupCommands(t, "")

			code := cmds.HandleCommand(tt.args)

			assert.Contains(t, out.String(), tt.expectedOutput)
			assert.Equal(t, tt.expectedExit, code)
		})
	}
}

func TestInit(t *testing.T) {
	cmds, out := setupCommands(t, "")

	assert.Equal(t, 0, cmds.Init())
	assert.Contains(t, out.String(), "Database initialized successfully")
	assert.DirExists(t, cmds.DBPath)

	out.Reset()
	assert.Equal(t, 0, cmds.Init())
	assert.Contains(t, out.String(), "Database already exists")
}

func TestClean(t *testing.T) {
	t.Run("clean non-existent database", func(t *testing.T) {
		cmds, out := setupCommands(t, "")
		assert.Equal(t, 0, cmds.Clean())
		assert.Contains(t, out.String(), "Database is already clean")
	})

	t.Run("clean existing database - confirmed", func(t *testing.T) {
		cmds, out := setupCommands(t, "y\n")
		require.Equal(t, 0, cmds.Init())

		assert.Equal(t, 0, cmds.Clean())
		assert.Contains(t, out.String(), "Database cleaned successfully")
		assert.NoDirExists(t, cmds.DBPath)
	})

	t.Run("clean existing database - cancelled", func(t *testing.T) {
		cmds, out := setupCommands(t, "n\n")
		require.Equal(t, 0, cmds.Init())

		assert.Equal(t, 1, cmds.Clean())
		assert.Contains(t, out.String(), "Operation cancelled")
		assert.DirExists(t, cmds.DBPath)
	})
}

func TestBackupAndRestore(t *testing.T) {
	ctx := context.Background()
	cmds, out := setupCommands(t, "y\n")

	_, code := cmds.Backup()
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "No database exists to backup")

	store, err := repositories.NewBadgerStore(cmds.DBPath)
	require.NoError(t, err)
	blog := &models.Blog{Title: "Keep me", Content: "Across a restore"}
	require.NoError(t, store.Blogs().Create(ctx, blog))
	require.NoError(t, store.Close())

	backupFile, code := cmds.Backup()
	require.Equal(t, 0, code, out.String())
	assert.FileExists(t, backupFile)
	assert.Contains(t, out.String(), "Database backed up successfully")

	out.Reset()
	assert.Equal(t, 0, cmds.Restore(backupFile))
	assert.Contains(t, out.String(), "Database restored successfully")

	store, err = repositories.NewBadgerStore(cmds.DBPath)
	require.NoError(t, err)
	defer store.Close()
	restored, err := store.Blogs().GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", restored.Title)
}

func TestRestoreErrors(t *testing.T) {
	t.Run("missing backup", func(t *testing.T) {
		cmds, out := setupCommands(t, "")
		assert.Equal(t, 1, cmds.Restore("nonexistent.db"))
		assert.Contains(t, out.String(), "Backup file does not exist")
	})

	t.Run("empty backup", func(t *testing.T) {
		cmds, out := setupCommands(t, "")
		empty := filepath.Join(t.TempDir(), "empty.db")
		require.NoError(t, os.WriteFile(empty, nil, 0644))

		assert.Equal(t, 1, cmds.Restore(empty))
		assert.Contains(t, out.String(), "Backup file is empty")
	})

	t.Run("existing database - cancelled", func(t *testing.T) {
		cmds, out := setupCommands(t, "n\n")
		require.Equal(t, 0, cmds.Init())
		backup := filepath.Join(t.TempDir(), "backup.db")
		require.NoError(t, os.WriteFile(backup, []byte("not empty"), 0644))

		assert.Equal(t, 1, cmds.Restore(backup))
		assert.Contains(t, out.String(), "Operation cancelled")
		assert.DirExists(t, cmds.DBPath)
	})
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error {
	return f.closeErr
}

func TestWriteBackupReportsCloseError(t *testing.T) {
	store, err := repositories.NewInMemoryBadgerStore()
	require.NoError(t, err)
	defer store.Close()

	blog := &models.Blog{Title: "Backed up", Content: "Some content here", CreatedBy: "alice"}
	require.NoError(t, store.Blogs().Create(context.Background(), blog))

	t.Run("close fails", func(t *testing.T) {
		w := &failingCloser{closeErr: errors.New("disk full")}
		err := writeBackup(store, w)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NotZero(t, w.Len())
	})

	t.Run("close succeeds", func(t *testing.T) {
		w := &failingCloser{}
		require.NoError(t, writeBackup(store, w))
		assert.NotZero(t, w.Len())
	})
}
