package repositories

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"blogcomments/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Blogs()

	blog := &models.Blog{
		Title:     "Test Blog",
		Content:   "Test Content",
		CreatedBy: "alice",
	}
	require.NoError(t, repo.Create(ctx, blog))
	assert.NotEmpty(t, blog.ID)

	t.Run("get blog", func(t *testing.T) {
		found, err := repo.GetByID(ctx, blog.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Test Blog", found.Title)
		assert.Equal(t, 0, found.Comments)
	})

	t.Run("increment comments", func(t *testing.T) {
		require.NoError(t, repo.IncrementComments(ctx, blog.ID, 1))
		require.NoError(t, repo.IncrementComments(ctx, blog.ID, 1))

		found, err := repo.GetByID(ctx, blog.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, found.Comments)
	})

	t.Run("increment missing blog", func(t *testing.T) {
		err := repo.IncrementComments(ctx, "missing", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBlogRepositoryConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).Blogs()

	blog := &models.Blog{Title: "Popular", Content: "Everyone comments", CreatedBy: "alice"}
	require.NoError(t, repo.Create(ctx, blog))

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementComments(ctx, blog.ID, 1)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	found, err := repo.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, found.Comments)
}

func TestBadgerStore(t *testing.T) {
	t.Run("temporary database is removed on close", func(t *testing.T) {
		store, err := NewBadgerStore("")
		require.NoError(t, err)
		path := store.dbPath
		assert.DirExists(t, path)

		assert.NoError(t, store.Ping(context.Background()))
		assert.NoError(t, store.Close())
		assert.NoError(t, store.Close())
		assert.NoDirExists(t, path)
	})

	t.Run("test_db is an ordinary path", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		defer func() {
			require.NoError(t, os.Chdir(wd))
		}()

		store, err := NewBadgerStore("test_db")
		require.NoError(t, err)
		assert.Equal(t, "test_db", store.dbPath)
		assert.False(t, store.isTestDB)
		require.NoError(t, store.Close())
		assert.DirExists(t, "test_db")
	})

	t.Run("ping after close", func(t *testing.T) {
		store, err := NewBadgerStore(t.TempDir() + "/test.db")
		require.NoError(t, err)
		require.NoError(t, store.Close())

		assert.Error(t, store.Ping(context.Background()))
	})

	t.Run("clear", func(t *testing.T) {
		store := newTestStore(t)
		blog := &models.Blog{Title: "Cleared", Content: "Soon gone"}
		require.NoError(t, store.Blogs().Create(context.Background(), blog))

		require.NoError(t, store.Clear())

		_, err := store.Blogs().GetByID(context.Background(), blog.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBadgerStoreBackupRestore(t *testing.T) {
	ctx := context.Background()
	source := newTestStore(t)
	blog := &models.Blog{Title: "Backed up", Content: "Survives a restore"}
	require.NoError(t, source.Blogs().Create(ctx, blog))
	comment := &models.Comment{BlogID: blog.ID, CreatedBy: "alice", Content: "me too"}
	require.NoError(t, source.Comments().Create(ctx, comment))

	var buf bytes.Buffer
	_, err := source.Backup(&buf)
	require.NoError(t, err)

	target := newTestStore(t)
	require.NoError(t, target.Restore(&buf))

	restored, err := target.Blogs().GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backed up", restored.Title)

	comments, err := target.Comments().ListByBlog(ctx, blog.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}
