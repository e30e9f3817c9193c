package theme

// Centralized theming for the preview windows. Provides palette constants and
// InitStyles to activate a base theme and configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorPreviewBg   = "#000000" // behind the live preview
	ColorPlaceholder = "#eeeeee" // empty still image
	ColorSurface     = "#1e293b"
	ColorPrimary     = "#3b82f6"
	ColorDanger      = "#ef4444"
	ColorFPS         = "#00ff00" // rate overlay text
	ColorError       = "#ff0000" // error overlay text
	ColorErrorPlate  = "#1a1a1a" // Tk has no alpha, a near-black plate stands in for #99000000
	ColorText        = "#f1f5f9"
	ColorTextDark    = "#1e293b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
)

// light is the background for the still-image and hello windows.
var light bool

// InitStyles applies the dark preview styles.
func InitStyles() { applyStyles(false) }

// InitLightStyles applies the light styles used by the still-image and hello windows.
func InitLightStyles() { applyStyles(true) }

// IsLight reports the active mode.
func IsLight() bool { return light }

func applyStyles(l bool) {
	light = l
	if l {
		_ = ActivateTheme("azure light")
		App.Configure(Background("#ffffff"))
	} else {
		_ = ActivateTheme("azure dark")
		App.Configure(Background(ColorPreviewBg))
	}

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground(ColorText),
		Background(ColorSurface),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
