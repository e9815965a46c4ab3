package realize

// Indexes of the basic faces every surface realizes eagerly, in
// realization order. The default face is always first so it lands at id 0
// and is available as the merge base for the rest.
const (
	BasicDefault = iota
	BasicModeLine
	BasicModeLineInactive
	BasicHeaderLine
	BasicToolBar
	BasicFringe
	BasicScrollBar
	BasicBorder
	BasicCursor
	BasicMouse
	BasicMenu
	BasicWindowDivider
	BasicVerticalBorder
	BasicInternalBorder
	BasicCount
)

// BasicNames lists the basic face names indexed by the Basic constants.
var BasicNames = [BasicCount]string{
	BasicDefault:          "default",
	BasicModeLine:         "mode-line",
	BasicModeLineInactive: "mode-line-inactive",
	BasicHeaderLine:       "header-line",
	BasicToolBar:          "tool-bar",
	BasicFringe:           "fringe",
	BasicScrollBar:        "scroll-bar",
	BasicBorder:           "border",
	BasicCursor:           "cursor",
	BasicMouse:            "mouse",
	BasicMenu:             "menu",
	BasicWindowDivider:    "window-divider",
	BasicVerticalBorder:   "vertical-border",
	BasicInternalBorder:   "internal-border",
}

// BasicIndex returns the basic-face index of name.
func BasicIndex(name string) (int, bool) {
	for i, n := range BasicNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
