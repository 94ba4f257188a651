package enum

import "errors"

var (
	ErrInvalidName     = errors.New("invalid enum name")
	ErrNotExportable   = errors.New("name cannot be exported")
	ErrNameCollision   = errors.New("name collision")
	ErrUnknownFeature  = errors.New("unknown feature")
	ErrSerdeNotEnabled = errors.New(`the "serde" feature is not enabled`)
)
