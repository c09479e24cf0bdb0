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
	taskTokenizeList = "Tokenizing File List"
	taskCountList    = "Counting Tokens in File List"
)

// Input is the argument of the collection operations: either a single path
// (file or directory, dispatched by what it names on disk) or an explicit
// list of file paths. The two are distinct; a list of one still gets list
// semantics.
type Input struct {
	path   string
	list   []string
	isList bool
}

// PathInput names a single file or directory.
func PathInput(path string) Input {
	return Input{path: path}
}

// ListInput names an explicit list of files.
func ListInput(paths ...string) Input {
	return Input{list: paths, isList: true}
}

// Result is the union produced by TokenizeFiles: token IDs for a single file,
// or a tree for a directory or list.
type Result struct {
	Tokens []int
	Tree   *trees.TokenTree
}

// IsTree reports whether the result carries a tree rather than a single
// token sequence.
func (r *Result) IsTree() bool {
	return r.Tree != nil
}

// TokenizeFiles tokenizes a file, a directory, or an explicit list of files.
//
// A single file path yields its token sequence; a directory path delegates to
// TokenizeDir; a list yields a flat tree keyed by file name. List entries must
// all be existing regular files: with ExitOnListError the call fails citing
// every offending entry at once, without it the offenders are skipped. A path
// that names neither a file nor a directory is a contract violation and fails
// with ErrUnexpectedInput.
func TokenizeFiles(in Input, params *Params) (*Result, error) {
	rc, err := newRun(params)
	if err != nil {
		return nil, err
	}

	if in.isList {
		tree, err := rc.tokenizeList(in.list)
		if err != nil {
			return nil, err
		}
		return &Result{Tree: tree}, nil
	}

	if in.path == "" {
		return nil, fmt.Errorf("empty input: %w", ErrUnexpectedInput)
	}

	info, err := os.Stat(in.path)
	switch {
	case err == nil && info.Mode().IsRegular():
		tokens, err := rc.tokenizeFile(in.path)
		if err != nil {
			return nil, err
		}
		return &Result{Tokens: tokens}, nil
	case err == nil && info.IsDir():
		tree, err := rc.tokenizeDir(in.path)
		if err != nil {
			return nil, err
		}
		return &Result{Tree: tree}, nil
	default:
		return nil, fmt.Errorf("given input path %q: %w", in.path, ErrUnexpectedInput)
	}
}

// GetNumTokenFiles counts tokens across a file, a directory, or an explicit
// list of files.
func GetNumTokenFiles(in Input, params *Params) (int, error) {
	rc, err := newRun(params)
	if err != nil {
		return 0, err
	}

	if in.isList {
		return rc.numTokenList(in.list)
	}

	if in.path == "" {
		return 0, fmt.Errorf("empty input: %w", ErrUnexpectedInput)
	}

	info, err := os.Stat(in.path)
	switch {
	case err == nil && info.Mode().IsRegular():
		return rc.numTokenFile(in.path)
	case err == nil && info.IsDir():
		return rc.numTokenDir(in.path)
	default:
		return 0, fmt.Errorf("given input path %q: %w", in.path, ErrUnexpectedInput)
	}
}

// validateList splits a list into existing regular files and everything else.
func validateList(paths []string) (files, nonFiles []string) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			nonFiles = append(nonFiles, p)
			continue
		}
		files = append(files, p)
	}
	return files, nonFiles
}

// checkList applies the list failure policy: with exit-on-error every
// offending entry is reported at once, otherwise offenders are dropped and
// the valid remainder is returned.
func (rc *runCtx) checkList(paths []string) ([]string, error) {
	files, nonFiles := validateList(paths)
	if len(nonFiles) == 0 {
		return files, nil
	}
	if rc.p.ExitOnListError {
		return nil, &NotAFileError{Paths: nonFiles}
	}
	slog.Warn("skipping non-file list entries", "entries", nonFiles)
	return files, nil
}

func (rc *runCtx) tokenizeList(paths []string) (*trees.TokenTree, error) {
	files, err := rc.checkList(paths)
	if err != nil {
		return nil, err
	}

	rc.rep.StartTask(taskTokenizeList, len(files))
	tree := trees.NewTokenTree()

	for _, file := range files {
		name := filepath.Base(file)
		rc.rep.AdvanceTask(taskTokenizeList, 0, "Tokenizing "+name)

		tokens, err := rc.tokenizeFile(file)
		if err != nil {
			var unsupported *textdecode.UnsupportedEncodingError
			if !rc.p.ExitOnListError && errors.As(err, &unsupported) {
				rc.rep.AdvanceTask(taskTokenizeList, 1, "Skipping "+name)
				continue
			}
			return nil, err
		}

		tree.AddTokens(name, tokens)
		rc.rep.AdvanceTask(taskTokenizeList, 1, "Done Tokenizing "+name)
	}

	return tree, nil
}

func (rc *runCtx) numTokenList(paths []string) (int, error) {
	files, err := rc.checkList(paths)
	if err != nil {
		return 0, err
	}

	rc.rep.StartTask(taskCountList, len(files))
	runningTotal := 0

	for _, file := range files {
		name := filepath.Base(file)
		rc.rep.AdvanceTask(taskCountList, 0, "Counting Tokens in "+name)

		n, err := rc.numTokenFile(file)
		if err != nil {
			var unsupported *textdecode.UnsupportedEncodingError
			if !rc.p.ExitOnListError && errors.As(err, &unsupported) {
				rc.rep.AdvanceTask(taskCountList, 1, "Skipping "+name)
				continue
			}
			return 0, err
		}

		runningTotal += n
		rc.rep.AdvanceTask(taskCountList, 1, "Done Counting Tokens in "+name)
	}

	return runningTotal, nil
}
