package view

import (
	"github.com/soocke/camfps-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// HelloText is the smoke-test greeting.
const HelloText = "Hello CI/CD World!"

// BuildHello packs a single centered greeting label.
func BuildHello() {
	Pack(Label(Txt(HelloText), Foreground(theme.ColorTextDark), Background("#ffffff")), Expand(true), Fill("both"), Padx("10m"), Pady("10m"))
}
