// Package api embeds the OpenAPI description of the trip planner API.
// The HTTP server serves it at /openapi.yaml.
package api

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time,
// so the description always ships with the binary that implements it.
//
//go:embed openapi.yaml
var OpenAPI []byte
