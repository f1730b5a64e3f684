package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/anand/fintype/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗███╗   ██╗████████╗██╗   ██╗██████╗ ███████╗
 ██╔════╝██║████╗  ██║╚══██╔══╝╚██╗ ██╔╝██╔══██╗██╔════╝
 █████╗  ██║██╔██╗ ██║   ██║    ╚████╔╝ ██████╔╝█████╗
 ██╔══╝  ██║██║╚██╗██║   ██║     ╚██╔╝  ██╔═══╝ ██╔══╝
 ██║     ██║██║ ╚████║   ██║      ██║   ██║     ███████╗
 ╚═╝     ╚═╝╚═╝  ╚═══╝   ╚═╝      ╚═╝   ╚═╝     ╚══════╝`

const bannerCompact = "F I N T Y P E"

// RenderBanner returns the FINTYPE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
