package store

import "errors"

var (
	// ErrNotFound is returned by Load for an unknown reference.
	ErrNotFound = errors.New("store: config not found")

	// ErrEncode wraps a codec failure while saving.
	ErrEncode = errors.New("store: encode failed")

	// ErrDecode wraps a codec failure while loading.
	ErrDecode = errors.New("store: decode failed")

	// ErrNoID is returned when saving a record without an ID.
	ErrNoID = errors.New("store: config has no id")

	// ErrUnknownFormat is returned by CodecFor for an unrecognised extension.
	ErrUnknownFormat = errors.New("store: unknown format")
)
