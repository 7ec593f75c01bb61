package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-mesc/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

const maskedURL = "********"

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func writeField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), value)
}

// maskURL hides everything after the host, where providers put api keys.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return maskedURL
	}
	if u.Path == "" && u.RawQuery == "" && u.User == nil {
		return u.Scheme + "://" + u.Host
	}
	return u.Scheme + "://" + u.Host + "/" + maskedURL
}

// displayURL returns the URL to print for e. Concealed endpoints are always
// fully masked.
func displayURL(e models.Endpoint, reveal bool) string {
	switch {
	case e.Concealed():
		return maskedURL
	case reveal:
		return e.URL
	default:
		return maskURL(e.URL)
	}
}

func endpointRows(endpoints []models.Endpoint, reveal bool) [][]string {
	rows := make([][]string, len(endpoints))
	for i, e := range endpoints {
		labels, _ := e.Labels()
		rows[i] = []string{e.Name, e.ChainIDString(), displayURL(e, reveal), strings.Join(labels, ",")}
	}
	return rows
}

var endpointHeaders = []string{"NAME", "CHAIN ID", "URL", "LABELS"}
