// Package gitctx reports minimal git context for the fixture repository so
// scan output can be correlated with the commit a CI scanner saw.
package gitctx

import (
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// RepoContext captures the repository state at scan time.
type RepoContext struct {
	GitSHA        string   `json:"git_sha,omitempty"`
	Branch        string   `json:"branch,omitempty"`
	ModifiedFiles []string `json:"modified_files,omitempty"`
	Dirty         bool     `json:"dirty"`
}

// Collect gathers repository context for the repo at target path.
// Returns nil when target is not inside a git repository; callers treat a
// nil context as "no git information available", not an error.
func Collect(target string) *RepoContext {
	repo, err := git.PlainOpenWithOptions(target, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	head, err := repo.Head()
	if err != nil {
		return nil
	}

	ctx := &RepoContext{
		GitSHA: head.Hash().String(),
		Branch: head.Name().Short(),
	}

	wt, err := repo.Worktree()
	if err != nil {
		return ctx
	}
	st, err := wt.Status()
	if err != nil {
		return ctx
	}
	for path, s := range st {
		if s.Staging != git.Unmodified || s.Worktree != git.Unmodified {
			ctx.ModifiedFiles = append(ctx.ModifiedFiles, filepath.ToSlash(path))
		}
	}
	sort.Strings(ctx.ModifiedFiles)
	ctx.Dirty = len(ctx.ModifiedFiles) > 0

	return ctx
}
