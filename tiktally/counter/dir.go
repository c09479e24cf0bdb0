package counter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tiktally/tiktally/tiktally/textdecode"
	"github.com/tiktally/tiktally/tiktally/trees"
)

const (
	taskTokenizeDir = "Tokenizing Directory"
	taskCountDir    = "Counting Tokens in Directory"
)

// TokenizeDir tokenizes every file in a directory into a nested result tree.
// Files whose bytes cannot be decoded to text are skipped, never aborting the
// scan. With Recursive set, subdirectory results are spliced in under their
// own name; subdirectories that end up empty are omitted entirely rather than
// appearing as empty trees.
func TokenizeDir(dirPath string, params *Params) (*trees.TokenTree, error) {
	rc, err := newRun(params)
	if err != nil {
		return nil, err
	}
	return rc.tokenizeDir(dirPath)
}

// GetNumTokenDir counts tokens across all files in a directory.
func GetNumTokenDir(dirPath string, params *Params) (int, error) {
	rc, err := newRun(params)
	if err != nil {
		return 0, err
	}
	return rc.numTokenDir(dirPath)
}

// checkDir resolves dirPath to an absolute path and verifies it names a
// directory.
func checkDir(dirPath string) (string, error) {
	abs, err := filepath.Abs(dirPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", dirPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", &NotADirectoryError{Path: abs}
	}
	return abs, nil
}

// countDirFiles counts files under dirPath, honoring the ignore matcher so the
// progress total matches what traversal will actually visit.
func (rc *runCtx) countDirFiles(dirPath string, recursive bool) (int, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	count := 0
	for _, entry := range entries {
		childPath := filepath.Join(dirPath, entry.Name())
		if rc.skipped(childPath) {
			continue
		}
		if entry.IsDir() {
			if recursive {
				sub, err := rc.countDirFiles(childPath, recursive)
				if err != nil {
					return 0, err
				}
				count += sub
			}
			continue
		}
		count++
	}
	return count, nil
}

func (rc *runCtx) tokenizeDir(dirPath string) (*trees.TokenTree, error) {
	abs, err := checkDir(dirPath)
	if err != nil {
		return nil, err
	}

	total, err := rc.countDirFiles(abs, rc.p.Recursive)
	if err != nil {
		return nil, err
	}
	rc.rep.StartTask(taskTokenizeDir, total)

	tree := trees.NewTokenTree()
	var subDirs []string

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", abs, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(abs, entry.Name())
		if rc.skipped(childPath) {
			slog.Debug("ignoring entry", "path", childPath)
			continue
		}

		if entry.IsDir() {
			subDirs = append(subDirs, childPath)
			continue
		}

		rc.rep.AdvanceTask(taskTokenizeDir, 0, "Tokenizing "+entry.Name())

		tokens, err := rc.tokenizeFile(childPath)
		if err != nil {
			var unsupported *textdecode.UnsupportedEncodingError
			if errors.As(err, &unsupported) {
				rc.rep.AdvanceTask(taskTokenizeDir, 1, "Skipping "+entry.Name())
				continue
			}
			return nil, err
		}

		tree.AddTokens(entry.Name(), tokens)
		rc.rep.AdvanceTask(taskTokenizeDir, 1, "Done Tokenizing "+entry.Name())
	}

	if rc.p.Recursive {
		for _, sub := range subDirs {
			subTree, err := rc.tokenizeDir(sub)
			if err != nil {
				return nil, err
			}
			if !subTree.IsEmpty() {
				tree.AddSubtree(filepath.Base(sub), subTree)
			}
		}
	}

	return tree, nil
}

func (rc *runCtx) numTokenDir(dirPath string) (int, error) {
	abs, err := checkDir(dirPath)
	if err != nil {
		return 0, err
	}

	total, err := rc.countDirFiles(abs, rc.p.Recursive)
	if err != nil {
		return 0, err
	}
	rc.rep.StartTask(taskCountDir, total)

	runningTotal := 0
	var subDirs []string

	entries, err := os.ReadDir(abs)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", abs, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(abs, entry.Name())
		if rc.skipped(childPath) {
			slog.Debug("ignoring entry", "path", childPath)
			continue
		}

		if entry.IsDir() {
			subDirs = append(subDirs, childPath)
			continue
		}

		rc.rep.AdvanceTask(taskCountDir, 0, "Counting Tokens in "+entry.Name())

		n, err := rc.numTokenFile(childPath)
		if err != nil {
			var unsupported *textdecode.UnsupportedEncodingError
			if errors.As(err, &unsupported) {
				rc.rep.AdvanceTask(taskCountDir, 1, "Skipping "+entry.Name())
				continue
			}
			return 0, err
		}

		runningTotal += n
		rc.rep.AdvanceTask(taskCountDir, 1, "Done Counting Tokens in "+entry.Name())
	}

	// Subdirectories always contribute to the total; Recursive only narrows
	// the progress pre-count. Kept distinct from TokenizeDir, which honors
	// Recursive for the result tree as well.
	for _, sub := range subDirs {
		n, err := rc.numTokenDir(sub)
		if err != nil {
			return 0, err
		}
		runningTotal += n
	}

	return runningTotal, nil
}
