package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	pderrors "github.com/manulapulga/pump-design/internal/errors"
)

// HasRemote reports whether the repository at dir has a remote with the
// given name.
func HasRemote(dir string, name string) (bool, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return false, fmt.Errorf("not a git repository: %w", err)
	}

	_, err = repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up remote %s: %w", name, err)
	}
	return true, nil
}

// GetRemoteURL returns the first fetch URL of the named remote.
func GetRemoteURL(dir string, name string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", pderrors.ErrNoRemoteConfigured
		}
		return "", fmt.Errorf("failed to look up remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", pderrors.ErrNoRemoteConfigured
	}
	return urls[0], nil
}

// ListRemotes returns the names of all configured remotes.
func ListRemotes(dir string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	return names, nil
}
