package api

import _ "embed"

//go:embed api.yaml
var document []byte

// Document returns the OpenAPI document as written.
func Document() []byte {
	return document
}
