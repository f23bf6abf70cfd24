package movieclip

import "errors"

var (
	// ErrCloneUnsupported is returned by MovieClip.Clone. Timeline tweens are
	// bound to concrete target nodes and cannot be retargeted onto a copy.
	ErrCloneUnsupported = errors.New("movieclip: clips cannot be cloned")

	// ErrInvalidFrameSet reports a malformed frame set in BitmapClipData.
	ErrInvalidFrameSet = errors.New("movieclip: invalid frame set")
	// ErrFrameNotFound reports a frame name missing from an atlas.
	ErrFrameNotFound = errors.New("movieclip: atlas frame not found")

	ErrUnknownProperty = errors.New("movieclip: unknown property")
	ErrPropertyType    = errors.New("movieclip: wrong property value type")
)
