// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive CLI client runtime.
//
// It drives the three-factor authentication sequence (password, face
// descriptor, voice descriptor) against the server through
// [adapter.ServerAdapter]: the [Flow] state machine enforces step ordering
// and retry semantics, and [App] wires it to terminal prompts.
package client
