// Package history keeps the config directory under git so every saved
// change is recorded and recoverable with plain git tooling.
package history

import (
	"errors"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Entry is one recorded config change.
type Entry struct {
	Hash    string
	Message string
	When    time.Time
}

// Store is a git repository wrapping the config directory.
type Store struct {
	dir  string
	repo *git.Repository
}

// Open opens the repository at dir, initializing it on first use.
func Open(dir string) (*Store, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(dir, false)
	}
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, repo: repo}, nil
}

// Commit records the current state of the config directory. A clean worktree
// is a no-op and reports false.
func (s *Store) Commit(message string) (bool, error) {
	wt, err := s.repo.Worktree()
	if err != nil {
		return false, err
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, err
	}

	status, err := wt.Status()
	if err != nil {
		return false, err
	}
	if status.IsClean() {
		return false, nil
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "clovis",
			Email: "clovis@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Recent returns up to limit entries, newest first. An empty repository
// yields an empty slice.
func (s *Store) Recent(limit int) ([]Entry, error) {
	head, err := s.repo.Head()
	if err != nil {
		// No commits yet.
		return []Entry{}, nil
	}

	iter, err := s.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	entries := make([]Entry, 0, limit)
	for len(entries) < limit {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		entries = append(entries, Entry{
			Hash:    commit.Hash.String()[:8],
			Message: commit.Message,
			When:    commit.Author.When,
		})
	}
	return entries, nil
}
