// Package server implements rate limiting and authentication middleware
// shared by the puzzle session HTTP API.
package server
