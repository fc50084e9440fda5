package json

import jsoniter "github.com/json-iterator/go"

var (
	// JSON is the jsoniter instance used throughout the codebase.
	// Matches ConfigCompatibleWithStandardLibrary except HTML escaping is
	// off so grid.JS expressions reach the browser shim verbatim.
	JSON = jsoniter.Config{
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()

	// Marshal is a shorthand for JSON.Marshal
	Marshal = JSON.Marshal

	// MarshalIndent is a shorthand for JSON.MarshalIndent
	MarshalIndent = JSON.MarshalIndent

	// Unmarshal is a shorthand for JSON.Unmarshal
	Unmarshal = JSON.Unmarshal

	// NewDecoder is a shorthand for JSON.NewDecoder
	NewDecoder = JSON.NewDecoder

	// NewEncoder is a shorthand for JSON.NewEncoder
	NewEncoder = JSON.NewEncoder
)
