package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tagfinder/internal/crypto"
	"tagfinder/internal/domain"
	"tagfinder/internal/i18n"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func rule(w io.Writer) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("=", 60)))
}

func title(w io.Writer, s string) {
	rule(w)
	fmt.Fprintln(w, titleStyle.Render(s))
	rule(w)
	fmt.Fprintln(w)
}

func section(w io.Writer, s string) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", 60)))
	fmt.Fprintln(w, sectionStyle.Render(s))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("-", 60)))
}

func coord(f float64) string { return fmt.Sprintf("%v", f) }

func printReport(w io.Writer, r domain.LocationReport) {
	fmt.Fprintln(w, "  "+i18n.T("fetch.latitude", coord(r.Latitude)))
	fmt.Fprintln(w, "  "+i18n.T("fetch.longitude", coord(r.Longitude)))
	fmt.Fprintln(w, "  "+i18n.T("fetch.timestamp", r.Timestamp))
	fmt.Fprintln(w)
	fmt.Fprintln(w, i18n.T("fetch.maps", r.MapsURL()))
}

func printKey(w io.Writer, key domain.KeyMaterial) {
	section(w, i18n.T("keygen.adv_key_header"))
	fmt.Fprintln(w, key.AdvKey.Base64())
	fmt.Fprintln(w)
	section(w, i18n.T("keygen.c_array_header"))
	fmt.Fprintln(w, crypto.CArray("public_keys", key.AdvKey.Slice()))
	fmt.Fprintln(w)
}
