// Package openapi describes model definitions as OpenAPI 3 schemas using
// kin-openapi, so services exposing models can publish their shape. Only the
// field set and the allow-empty policy are described; values are untyped.
package openapi
