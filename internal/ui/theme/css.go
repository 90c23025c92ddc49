package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateCSS creates GTK4 CSS for the panels host using the provided palette.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	// CSS custom properties (variables) - GTK4 uses :root selector
	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(":root {\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString(generatePanelsCSS(p))
	return sb.String()
}

// generatePanelsCSS styles the container and the three panes. The center
// pane casts a shadow over whichever drawer it uncovers.
// Uses em units for scalable UI.
func generatePanelsCSS(p Palette) string {
	shadow := rgbaFromHex(strings.TrimSpace(p.Background), 0.60)

	return fmt.Sprintf(`/* ===== Overlapping panels ===== */

.overlapping-panels {
	background-color: var(--bg);
}

.panel {
	color: var(--text);
	padding: 0.75em;
}

.panel-title {
	color: var(--accent);
	font-weight: bold;
	margin-bottom: 0.5em;
}

.panel-body {
	color: var(--muted);
}

.panel-drawer {
	background-color: var(--surface-variant);
}

.panel-center {
	background-color: var(--surface);
	border-left: 0.0625em solid var(--border);
	border-right: 0.0625em solid var(--border);
	box-shadow: 0 0 1em %s;
}
`, shadow)
}

func rgbaFromHex(hex string, alpha float64) string {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return hex
	}

	r, rOK := parseHexByte(hex[1:3])
	g, gOK := parseHexByte(hex[3:5])
	b, bOK := parseHexByte(hex[5:7])
	if !rOK || !gOK || !bOK {
		return hex
	}

	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}

	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}

func parseHexByte(value string) (uint64, bool) {
	parsed, err := strconv.ParseUint(value, 16, 8)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
