package encoding

import (
	"fmt"
	"strings"
)

// InvalidModelError reports a model name outside the known set. The message
// lists every valid model so the caller can self-correct.
type InvalidModelError struct {
	Model string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("invalid model: %s\n\nValid models:\n%s",
		e.Model, strings.Join(validModels, "\n"))
}

// InvalidEncodingError reports an encoding name outside the known set.
type InvalidEncodingError struct {
	Name string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding name: %s\n\nValid encoding names:\n%s",
		e.Name, strings.Join(validEncodings, "\n"))
}

// MismatchError reports an inconsistent combination of model, encoding name,
// and encoding handle. Want is the encoding name the model actually maps to
// (or, for name-vs-handle conflicts, the name that was requested).
type MismatchError struct {
	Model        string // model argument, when given
	EncodingName string // encoding name argument, when given
	Handle       string // name carried by a provided encoding handle, when given
	Want         string
}

func (e *MismatchError) Error() string {
	switch {
	case e.Handle != "" && e.Model != "" && e.EncodingName != "":
		return fmt.Sprintf("model %s does not have encoding %s\n\nValid encoding name for model %s: %q",
			e.Model, e.Handle, e.Model, e.Want)
	case e.Handle != "" && e.EncodingName != "":
		return fmt.Sprintf("encoding name %s does not match provided encoding %q",
			e.EncodingName, e.Handle)
	case e.Handle != "" && e.Model != "":
		return fmt.Sprintf("model %s does not have provided encoding %q\n\nValid encoding name for model %s: %q",
			e.Model, e.Handle, e.Model, e.Want)
	default:
		return fmt.Sprintf("model %s does not have encoding name %s\n\nValid encoding names for model %s: %q",
			e.Model, e.EncodingName, e.Model, e.Want)
	}
}

// MissingInputError reports that no model, encoding name, or encoding handle
// was supplied at all.
type MissingInputError struct{}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("either model, encoding name, or encoding must be provided. Valid models:\n%s\n\nValid encodings:\n%s",
		strings.Join(validModels, "\n"), strings.Join(validEncodings, "\n"))
}
