//go:build fyne && !cgo

package fynemenu

import (
	"fmt"

	"gomenu/internal/export"
	"gomenu/internal/menu"
)

// Run informs the user that the Fyne backend requires cgo (OpenGL) and a C
// toolchain. This stub is compiled when the build uses -tags fyne but CGO is
// disabled.
func Run(string, *export.Definition, func(menu.Event)) error {
	return fmt.Errorf("the Fyne backend requires cgo (OpenGL). Enable cgo and install a C toolchain, then run with CGO_ENABLED=1 go run -tags fyne ./cmd/menudemo run")
}
