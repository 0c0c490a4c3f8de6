package ui

import "strings"

var splashBanner = strings.TrimLeft(`
    ____  ________________  ____     __________  ____  ____
   / __ \/ ____/_  __/ __ \/ __ \   /_  __/ __ \/ __ \/ __ \
  / /_/ / __/   / / / /_/ / / / /    / / / / / / / / / / / /
 / _, _/ /___  / / / _, _/ /_/ /    / / / /_/ / /_/ / /_/ /
/_/ |_/_____/ /_/ /_/ |_|\____/    /_/  \____/_____/\____/
`, "\n")

// Splash renders the startup banner.
func Splash(theme *Theme, version string) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("RETRO TODO"))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(splashBanner))
	b.WriteString("\n")
	b.WriteString(theme.Header.Render(strings.Repeat("=", 50)))
	b.WriteString("\n\n")
	b.WriteString(theme.Header.Render("TERMINAL TASK MANAGER"))
	b.WriteString("\n\n")
	b.WriteString(theme.Muted.Render("Version: "))
	b.WriteString(theme.Success.Render(version))
	b.WriteString("\n")
	return Boxed(theme, b.String())
}
