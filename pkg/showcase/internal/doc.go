// Package internal contains the rendering infrastructure of the showcase:
// SDL window and renderer setup, logging, theming, input translation,
// focus repeat timing, texture caching and vector icons.
// Types and functions in this package are not part of the public API.
package internal
