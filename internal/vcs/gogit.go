package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
)

// GoGitClient implements Client on top of go-git, avoiding a subprocess
// dependency on the git binary. Grounded on the corpus's widespread use of
// go-git/v5 for repository introspection (e.g. the stringer githygiene
// collector).
type GoGitClient struct {
	repo *git.Repository
	root string
}

// Open opens the repository rooted at dir (or any of its parents).
func Open(dir string) (*GoGitClient, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsNotARepo, err)
	}
	return &GoGitClient{repo: repo, root: dir}, nil
}

func (c *GoGitClient) ListTracked(ctx context.Context) ([]string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}

	var paths []string
	walker := object.NewTreeWalker(tree, true, nil)
	defer walker.Close()
	for {
		if ctx.Err() != nil {
			return paths, ctx.Err()
		}
		name, entry, err := walker.Next()
		if err != nil {
			break
		}
		if !entry.Mode.IsFile() {
			continue
		}
		paths = append(paths, name)
	}
	return paths, nil
}

func (c *GoGitClient) upstreamRef() (*plumbing.Reference, string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return nil, "", err
	}
	branch := head.Name().Short()

	cfg, err := c.repo.Config()
	if err != nil {
		return nil, branch, err
	}
	branchCfg, ok := cfg.Branches[branch]
	if !ok || branchCfg.Remote == "" || branchCfg.Merge == "" {
		return nil, branch, apperr.ErrVcsNoUpstream
	}

	remoteBranch := branchCfg.Merge.Short()
	remoteRefName := plumbing.NewRemoteReferenceName(branchCfg.Remote, remoteBranch)
	ref, err := c.repo.Reference(remoteRefName, true)
	if err != nil {
		return nil, branch, apperr.ErrVcsNoUpstream
	}
	return ref, branch, nil
}

func (c *GoGitClient) ListPendingPush(ctx context.Context) ([]string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	upstream, _, err := c.upstreamRef()
	if err != nil {
		return nil, err
	}

	headCommit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	upstreamCommit, err := c.repo.CommitObject(upstream.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}

	patch, err := upstreamCommit.Patch(headCommit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}

	var paths []string
	for _, fp := range patch.FilePatches() {
		if ctx.Err() != nil {
			return paths, ctx.Err()
		}
		_, to := fp.Files()
		if to != nil {
			paths = append(paths, to.Path())
		}
	}
	return paths, nil
}

func (c *GoGitClient) DiffUnstaged(ctx context.Context) (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	upstream, _, err := c.upstreamRef()
	if err != nil {
		return "", err
	}

	headCommit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	upstreamCommit, err := c.repo.CommitObject(upstream.Hash())
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}

	patch, err := upstreamCommit.Patch(headCommit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	return patch.String(), nil
}

func (c *GoGitClient) ShowIndex(ctx context.Context, path string) ([]byte, error) {
	head, err := c.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrVcsUnavailable, err)
	}
	file, err := commit.File(path)
	if err != nil {
		return nil, err
	}
	content, err := file.Contents()
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

func (c *GoGitClient) Metadata(ctx context.Context) Metadata {
	meta := PlaceholderMetadata()

	head, err := c.repo.Head()
	if err != nil {
		return meta
	}
	meta.Branch = head.Name().Short()
	meta.CommitHash = head.Hash().String()

	commit, err := c.repo.CommitObject(head.Hash())
	if err == nil {
		meta.Author = commit.Author.Name
		meta.Timestamp = commit.Author.When.Format("2006-01-02 03:04:05 PM")
	}

	if remote, err := c.repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		meta.RepoName = repoNameFromURL(remote.Config().URLs[0])
	}

	return meta
}

func repoNameFromURL(url string) string {
	url = strings.TrimSuffix(url, ".git")
	url = strings.TrimSuffix(url, "/")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 && i+1 < len(url) {
		return url[i+1:]
	}
	return url
}
