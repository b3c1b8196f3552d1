package builder

import "errors"

var (
	ErrOutputDirRequired = errors.New("builder: output dir is required")
	ErrRenderFailed      = errors.New("builder: failed to render pdf")
)
