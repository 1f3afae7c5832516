package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#CCCCCC"))

	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// printWarning shows a boxed warning about the config on stderr
func printWarning(title string, details ...string) {
	warningMessage := warningStyle.Render("Warning: ") + title

	messages := filterEmptyStyledStrings(lo.Map(details, func(d string, _ int) string {
		return infoStyle.Render(d)
	}))

	fullMessage := warningMessage
	if len(messages) > 0 {
		fullMessage = fmt.Sprintf("%s\n%s",
			warningMessage,
			lipgloss.JoinVertical(lipgloss.Left, messages...),
		)
	}

	fmt.Fprintln(os.Stderr, containerStyle.Render(fullMessage))
}

func isStyleRenderEffectivelyEmpty(styledStr string) bool {
	cleanStr := ansiEscapeRegex.ReplaceAllString(styledStr, "")

	cleanStr = strings.TrimFunc(cleanStr, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})

	return cleanStr == ""
}

func filterEmptyStyledStrings(styledStrings []string) []string {
	return lo.Filter(styledStrings, func(str string, _ int) bool {
		return !isStyleRenderEffectivelyEmpty(str)
	})
}
