package counter

import "fmt"

// TokenizeStr tokenizes a string into token IDs using the encoding named by
// params.
func TokenizeStr(s string, params *Params) ([]int, error) {
	rc, err := newRun(params)
	if err != nil {
		return nil, err
	}
	return rc.tokenizeStr(s), nil
}

// GetNumTokenStr counts the tokens in a string.
func GetNumTokenStr(s string, params *Params) (int, error) {
	rc, err := newRun(params)
	if err != nil {
		return 0, err
	}

	display := displayString(s, 22, 25)
	task := fmt.Sprintf("Counting Tokens in %q", display)
	hasBar := rc.rep.Idle()
	if hasBar {
		rc.rep.StartTask(task, 1)
	}

	tokens := rc.tokenizeStr(s)

	if hasBar {
		rc.rep.AdvanceTask(task, 1, fmt.Sprintf("Done Counting Tokens in %q", display))
	}

	return len(tokens), nil
}

func (rc *runCtx) tokenizeStr(s string) []int {
	display := displayString(s, 30, 33)
	task := fmt.Sprintf("Tokenizing %q", display)
	hasBar := rc.rep.Idle()
	if hasBar {
		rc.rep.StartTask(task, 1)
	}

	tokens := rc.enc.Encode(s)

	if hasBar {
		rc.rep.AdvanceTask(task, 1, fmt.Sprintf("Done Tokenizing %q", display))
	}

	return tokens
}

// displayString shortens a string for progress descriptions: strings longer
// than limit keep their first keep characters plus an ellipsis.
func displayString(s string, keep, limit int) string {
	if len(s) > limit {
		return s[:keep] + "..."
	}
	return s
}
