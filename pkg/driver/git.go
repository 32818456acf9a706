package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitFetcher reads source files out of git repositories. Repositories are
// cloned once into CacheDir and fetched again when a revision is missing.
type GitFetcher struct {
	CacheDir string

	mu     sync.Mutex
	logger log.Logger
}

func NewGitFetcher(cacheDir string) *GitFetcher {
	return &GitFetcher{CacheDir: cacheDir, logger: log.New("component", "git")}
}

// HomeDir is $HELANG_HOME, falling back to ~/.helang.
func HomeDir() string {
	if home := os.Getenv("HELANG_HOME"); home != "" {
		return home
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".helang")
	}
	return filepath.Join(os.TempDir(), "helang")
}

// DefaultCacheDir is the git clone cache under HomeDir.
func DefaultCacheDir() string {
	return filepath.Join(HomeDir(), "git")
}

// ReadFile resolves spec to a commit and returns the contents of spec.File
// at that commit.
func (f *GitFetcher) ReadFile(spec *SourceSpec) (string, error) {
	if spec == nil || spec.Git == "" {
		return "", fmt.Errorf("git: source has no repository")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	repo, err := f.open(spec.Git)
	if err != nil {
		return "", err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(spec.Revision()))
	if err != nil {
		f.logger.Debug("Revision missing, fetching", "repo", spec.Git, "rev", spec.Pin())
		if ferr := fetchAll(repo); ferr != nil {
			return "", fmt.Errorf("git: fetch %s: %w", spec.Git, ferr)
		}
		hash, err = repo.ResolveRevision(plumbing.Revision(spec.Revision()))
		if err != nil {
			return "", fmt.Errorf("git: resolve %s in %s: %w", spec.Revision(), spec.Git, err)
		}
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("git: commit %s: %w", hash, err)
	}
	file, err := commit.File(filepath.ToSlash(spec.File))
	if err != nil {
		return "", fmt.Errorf("git: %s at %s: %w", spec.File, hash.String()[:7], err)
	}
	contents, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("git: read %s: %w", spec.File, err)
	}
	f.logger.Debug("Loaded git source", "repo", spec.Git, "rev", spec.Pin(), "commit", hash.String()[:7], "file", spec.File)
	return contents, nil
}

func (f *GitFetcher) open(url string) (*git.Repository, error) {
	dir := filepath.Join(f.CacheDir, repoDirName(url))
	repo, err := git.PlainOpen(dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("git: open %s: %w", dir, err)
	}
	f.logger.Info("Cloning source repository", "repo", url, "dir", dir)
	repo, err = git.PlainClone(dir, true, &git.CloneOptions{URL: url, Tags: git.AllTags})
	if err != nil {
		return nil, fmt.Errorf("git: clone %s: %w", url, err)
	}
	return repo, nil
}

func fetchAll(repo *git.Repository) error {
	err := repo.Fetch(&git.FetchOptions{
		RemoteName: "origin",
		Tags:       git.AllTags,
		RefSpecs:   []config.RefSpec{"+refs/heads/*:refs/remotes/origin/*"},
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

var repoDirPattern = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func repoDirName(url string) string {
	name := strings.TrimSuffix(strings.TrimSpace(url), ".git")
	name = repoDirPattern.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}
