// Package spec embeds the OpenAPI document for the Itinerary Planner API.
// The HTTP server serves it at /openapi.yaml, and internal/handler/gen is
// generated from it with oapi-codegen.
package spec

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.0 --config=oapi-codegen.yaml openapi.yaml

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
