package counter

import (
	"path/filepath"

	"github.com/tiktally/tiktally/tiktally/textdecode"
)

// TokenizeFile tokenizes the contents of a file. A missing file or an
// undecodable one fails the call; directory and list traversal recover from
// the latter, a direct call does not.
func TokenizeFile(path string, params *Params) ([]int, error) {
	rc, err := newRun(params)
	if err != nil {
		return nil, err
	}
	return rc.tokenizeFile(path)
}

// GetNumTokenFile counts the tokens in a file.
func GetNumTokenFile(path string, params *Params) (int, error) {
	rc, err := newRun(params)
	if err != nil {
		return 0, err
	}
	return rc.numTokenFile(path)
}

func (rc *runCtx) tokenizeFile(path string) ([]int, error) {
	contents, err := textdecode.ReadTextFile(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	task := "Tokenizing " + name
	hasBar := rc.rep.Idle()
	if hasBar {
		rc.rep.StartTask(task, 1)
	}

	tokens := rc.tokenizeStr(contents)

	if hasBar {
		rc.rep.AdvanceTask(task, 1, "Done Tokenizing "+name)
	}

	return tokens, nil
}

func (rc *runCtx) numTokenFile(path string) (int, error) {
	name := filepath.Base(path)
	task := "Counting Tokens in " + name
	hasBar := rc.rep.Idle()
	if hasBar {
		rc.rep.StartTask(task, 1)
	}

	tokens, err := rc.tokenizeFile(path)
	if err != nil {
		return 0, err
	}

	if hasBar {
		rc.rep.AdvanceTask(task, 1, "Done Counting Tokens in "+name)
	}

	return len(tokens), nil
}
