package gitctx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectOutsideRepository(t *testing.T) {
	assert.Nil(t, Collect(t.TempDir()))
}

func TestCollectCleanRepository(t *testing.T) {
	dir := initRepoWithCommit(t)

	ctx := Collect(dir)
	require.NotNil(t, ctx)
	assert.Len(t, ctx.GitSHA, 40)
	assert.Equal(t, "master", ctx.Branch)
	assert.False(t, ctx.Dirty)
	assert.Empty(t, ctx.ModifiedFiles)
}

func TestCollectDirtyRepository(t *testing.T) {
	dir := initRepoWithCommit(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.txt"), []byte("uncommitted\n"), 0o644))

	ctx := Collect(dir)
	require.NotNil(t, ctx)
	assert.True(t, ctx.Dirty)
	assert.Contains(t, ctx.ModifiedFiles, "extra.txt")
}

func TestCollectDetectsDotGitFromSubdirectory(t *testing.T) {
	dir := initRepoWithCommit(t)
	sub := filepath.Join(dir, "fixtures", "data")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	ctx := Collect(sub)
	require.NotNil(t, ctx)
	assert.NotEmpty(t, ctx.GitSHA)
}

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("corpus\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}
