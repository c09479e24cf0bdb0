package encoding

// Request names the encoding a caller wants: by model, by encoding name, by an
// already-obtained handle, or any combination of the three. Zero fields are
// treated as absent.
type Request struct {
	Model        string
	EncodingName string
	Encoding     *Encoding
}

// Resolve validates that the pieces of a Request agree and returns the one
// concrete encoding they name.
//
// A model is validated against the known set and mapped to its encoding name.
// An encoding name is validated and must match the model's, when both are
// given. A provided handle must carry the resolved name; on full agreement the
// handle itself is adopted rather than loading a fresh one. A handle alone is
// accepted outright. An empty Request fails with MissingInputError.
func Resolve(req Request) (*Encoding, error) {
	resolvedName := ""

	if req.Model != "" {
		name, err := EncodingNameForModel(req.Model)
		if err != nil {
			return nil, err
		}
		resolvedName = name
	}

	if req.EncodingName != "" {
		if !isValidEncoding(req.EncodingName) {
			return nil, &InvalidEncodingError{Name: req.EncodingName}
		}
		if resolvedName != "" && resolvedName != req.EncodingName {
			return nil, &MismatchError{
				Model:        req.Model,
				EncodingName: req.EncodingName,
				Want:         resolvedName,
			}
		}
		resolvedName = req.EncodingName
	}

	if req.Encoding != nil {
		if resolvedName != "" && req.Encoding.Name() != resolvedName {
			return nil, &MismatchError{
				Model:        req.Model,
				EncodingName: req.EncodingName,
				Handle:       req.Encoding.Name(),
				Want:         resolvedName,
			}
		}
		return req.Encoding, nil
	}

	if resolvedName == "" {
		return nil, &MissingInputError{}
	}

	return Get(resolvedName)
}
