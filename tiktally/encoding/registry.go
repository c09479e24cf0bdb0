// Package encoding maps named OpenAI models to tiktoken encodings and resolves
// any combination of model name, encoding name, and encoding handle down to one
// concrete encoding.
package encoding

import (
	"maps"
	"slices"
	"sort"
)

// modelMappings is the closed model-to-encoding table. Some keys name a model
// family rather than a single model ("Codex models"); the mapping is many-to-one.
var modelMappings = map[string]string{
	"gpt-4o":                    "o200k_base",
	"gpt-4o-mini":               "o200k_base",
	"gpt-4-turbo":               "cl100k_base",
	"gpt-4":                     "cl100k_base",
	"gpt-3.5-turbo":             "cl100k_base",
	"text-embedding-ada-002":    "cl100k_base",
	"text-embedding-3-small":    "cl100k_base",
	"text-embedding-3-large":    "cl100k_base",
	"Codex models":              "p50k_base",
	"text-davinci-002":          "p50k_base",
	"text-davinci-003":          "p50k_base",
	"GPT-3 models like davinci": "r50k_base",
}

var validModels = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"gpt-4-turbo",
	"gpt-4",
	"gpt-3.5-turbo",
	"text-embedding-ada-002",
	"text-embedding-3-small",
	"text-embedding-3-large",
	"Codex models",
	"text-davinci-002",
	"text-davinci-003",
	"GPT-3 models like davinci",
}

var validEncodings = []string{"o200k_base", "cl100k_base", "p50k_base", "r50k_base"}

// ModelMappings returns a copy of the model-to-encoding table.
func ModelMappings() map[string]string {
	return maps.Clone(modelMappings)
}

// ValidModels returns the fixed, ordered list of known model names.
func ValidModels() []string {
	return slices.Clone(validModels)
}

// ValidEncodings returns the fixed, ordered list of known encoding names.
func ValidEncodings() []string {
	return slices.Clone(validEncodings)
}

func isValidModel(model string) bool {
	_, ok := modelMappings[model]
	return ok
}

func isValidEncoding(name string) bool {
	return slices.Contains(validEncodings, name)
}

// EncodingNameForModel returns the encoding name a model tokenizes with.
func EncodingNameForModel(model string) (string, error) {
	name, ok := modelMappings[model]
	if !ok {
		return "", &InvalidModelError{Model: model}
	}
	return name, nil
}

// ModelMatch holds the models mapped to one encoding. The underlying table is
// many-to-one, so a lookup may match a single model or several; Single
// distinguishes the two.
type ModelMatch struct {
	models []string
}

// Single returns the matched model when exactly one model maps to the encoding.
func (m ModelMatch) Single() (string, bool) {
	if len(m.models) == 1 {
		return m.models[0], true
	}
	return "", false
}

// Models returns all matched models, sorted lexicographically.
func (m ModelMatch) Models() []string {
	return slices.Clone(m.models)
}

// ModelsForEncoding returns the model(s) associated with an encoding name.
func ModelsForEncoding(encodingName string) (ModelMatch, error) {
	if !isValidEncoding(encodingName) {
		return ModelMatch{}, &InvalidEncodingError{Name: encodingName}
	}

	var matches []string
	for model, name := range modelMappings {
		if name == encodingName {
			matches = append(matches, model)
		}
	}
	sort.Strings(matches)

	return ModelMatch{models: matches}, nil
}
