// SPDX-License-Identifier: EPL-2.0

package store

import "errors"

var (
	// ErrNotFound indicates no asset exists under the requested name
	ErrNotFound = errors.New("asset not found")

	// ErrInvalidName indicates an empty name or one that escapes the store
	ErrInvalidName = errors.New("invalid asset name")

	// ErrUnknownKind indicates an unsupported store backend
	ErrUnknownKind = errors.New("unknown store kind")

	// ErrMissingSetting indicates a backend setting required by Config.Kind is empty
	ErrMissingSetting = errors.New("missing store setting")
)
