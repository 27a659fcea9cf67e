package rjson

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Valid reports whether data is already well-formed JSON. Callers typically
// gate repair on this: parse strictly first and fix only when that fails.
func Valid(data []byte) bool {
	return gjson.ValidBytes(data)
}

// Unmarshal decodes data into v, repairing it first if strict decoding
// fails. The repair uses the minify configuration, so the retried decode
// scans as few bytes as possible.
func Unmarshal(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if retryErr := json.Unmarshal(Minify(data), v); retryErr != nil {
		return fmt.Errorf("unmarshal after repair: %w", retryErr)
	}
	return nil
}

// Get queries data at the given gjson path, repairing the document first when
// it is not valid JSON.
func Get(data []byte, path string) gjson.Result {
	return gjson.GetBytes(repaired(data), path)
}

// Set writes value at the given sjson path, repairing the document first when
// it is not valid JSON.
func Set(data []byte, path string, value interface{}) ([]byte, error) {
	return sjson.SetBytes(repaired(data), path, value)
}

// Delete removes the value at the given sjson path, repairing the document
// first when it is not valid JSON.
func Delete(data []byte, path string) ([]byte, error) {
	return sjson.DeleteBytes(repaired(data), path)
}

// repaired returns data untouched when it is already valid, and a minified
// repair of it otherwise.
func repaired(data []byte) []byte {
	if gjson.ValidBytes(data) {
		return data
	}
	return Minify(data)
}
