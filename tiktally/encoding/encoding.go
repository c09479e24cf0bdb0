package encoding

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"
)

// Encoding is an opaque handle to one tiktoken vocabulary. It is stateless and
// safe to reuse once obtained; two handles are interchangeable when their names
// match.
type Encoding struct {
	name string
	tk   *tiktoken.Tiktoken
}

// Get loads the encoding with the given name.
func Get(name string) (*Encoding, error) {
	if !isValidEncoding(name) {
		return nil, &InvalidEncodingError{Name: name}
	}

	tk, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", name, err)
	}

	return &Encoding{name: name, tk: tk}, nil
}

// ForModel loads the encoding associated with a model name.
func ForModel(model string) (*Encoding, error) {
	name, err := EncodingNameForModel(model)
	if err != nil {
		return nil, err
	}
	return Get(name)
}

// Name returns the encoding name this handle is bound to.
func (e *Encoding) Name() string {
	return e.name
}

// Encode converts text to token IDs.
func (e *Encoding) Encode(text string) []int {
	return e.tk.Encode(text, nil, nil)
}

// Decode converts token IDs back to text.
func (e *Encoding) Decode(tokens []int) string {
	return e.tk.Decode(tokens)
}

// Same reports whether two handles refer to the same underlying encoding.
func (e *Encoding) Same(other *Encoding) bool {
	return other != nil && e.name == other.name
}

// UseOfflineLoader switches tiktoken to its embedded BPE dictionaries so no
// vocabulary download happens at runtime.
func UseOfflineLoader() {
	tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())
}
