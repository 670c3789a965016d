package legalpages

import "errors"

// Sentinel errors for library operations.
var (
	ErrShellRender = errors.New("page shell rendering failed")
)
