// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/user"
)

// TODO(retr0h): consider moving out of global scope
var (
	purple    = lipgloss.Color("99")
	gray      = lipgloss.Color("245")
	lightGray = lipgloss.Color("241")
	white     = lipgloss.Color("15")
	teal      = lipgloss.Color("#06ffa5") // Soft teal for values/highlights

	// Reusable inline styles for compact key-value output.
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(purple)
	valueStyle = lipgloss.NewStyle().Foreground(teal)
)

// section represents a header with its corresponding rows.
type section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// printStyledTable renders a styled table with dynamic column widths.
func printStyledTable(
	sections []section,
) {
	re := lipgloss.NewRenderer(os.Stdout)

	// Get terminal width to constrain table if needed
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = 120 // Default to reasonable width if unable to get terminal size
	}

	for _, section := range sections {
		// Calculate optimal width for each column
		columnWidths := calculateColumnWidths(section.Headers, section.Rows, 1)

		// Check if total table width exceeds terminal width
		totalWidth := 0
		for _, width := range columnWidths {
			totalWidth += width
		}

		// Add border/spacing overhead (rough estimate)
		totalWidth += len(columnWidths) * 3 // borders and spacing

		// If table is too wide, proportionally reduce column widths
		if totalWidth > termWidth-4 { // leave some margin
			scale := float64(termWidth-4) / float64(totalWidth)
			for i := range columnWidths {
				columnWidths[i] = int(float64(columnWidths[i]) * scale)
				if columnWidths[i] < 8 { // minimum readable width
					columnWidths[i] = 8
				}
			}
		}

		var (
			HeaderStyle  = re.NewStyle().Foreground(white).Bold(true).Align(lipgloss.Center)
			CellStyle    = re.NewStyle().PaddingLeft(1)
			OddRowStyle  = CellStyle.Foreground(gray)
			EvenRowStyle = CellStyle.Foreground(lightGray)
			BorderStyle  = re.NewStyle().Foreground(purple)
			PaddingStyle = re.NewStyle().Padding(0, 2)
			TitleStyle   = re.NewStyle().Bold(true).Foreground(purple).PaddingLeft(2).PaddingTop(1)
			ColonStyle   = re.NewStyle().Bold(false)
		)

		if section.Title != "" {
			titleWithColon := TitleStyle.Render(section.Title) + ColonStyle.Render(":")
			fmt.Println(titleWithColon)
		} else {
			fmt.Println()
		}

		// Create the table and apply styles.
		t := table.New().
			Border(lipgloss.ThickBorder()).
			BorderStyle(BorderStyle).
			StyleFunc(func(
				row int,
				col int,
			) lipgloss.Style {
				// Determine base style based on row
				var baseStyle lipgloss.Style
				switch row % 2 {
				case 0:
					baseStyle = EvenRowStyle
				default:
					baseStyle = OddRowStyle
				}

				// Apply column-specific width if available
				if col < len(columnWidths) {
					baseStyle = baseStyle.Width(columnWidths[col])
				}

				return baseStyle
			})

		styledHeaders := make([]string, len(section.Headers))
		for i, header := range section.Headers {
			styledHeaders[i] = HeaderStyle.Render(header)
		}
		t.Headers(styledHeaders...)

		t.Rows(section.Rows...)

		// Render the styled table.
		fmt.Println(PaddingStyle.Render(t.String()))
	}
}

// kvMinColWidth is the minimum visual width for each key-value column.
// A consistent minimum ensures columns align across consecutive printKV calls.
const kvMinColWidth = 20

// printKV prints labeled key-value pairs on a single indented line.
// Pairs are padded to equal column widths for alignment.
// Arguments alternate between labels and values: label1, val1, label2, val2, ...
func printKV(
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := kvMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		if w := lipgloss.Width(pair); w > maxWidth {
			maxWidth = w
		}
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			pad := maxWidth - lipgloss.Width(pair) + 4
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	fmt.Println(line.String())
}

// calculateColumnWidths calculates the optimal width for each column based on content
func calculateColumnWidths(
	headers []string,
	rows [][]string,
	minPadding int,
) []int {
	if len(headers) == 0 {
		return []int{}
	}

	widths := make([]int, len(headers))

	// Start with header lengths
	for i, header := range headers {
		widths[i] = len(header)
	}

	// Check all row data to find max width per column
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				// For multi-line content, use the width of the longest line
				maxLineWidth := getMaxLineWidth(cell)
				if maxLineWidth > widths[i] {
					widths[i] = maxLineWidth
				}
			}
		}
	}

	// Add padding to each column
	for i := range widths {
		widths[i] += minPadding * 2 // padding on both sides
	}

	return widths
}

// getMaxLineWidth returns the width of the longest line in a multi-line string
func getMaxLineWidth(
	text string,
) int {
	lines := strings.Split(text, "\n")
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	return maxWidth
}

// printJSON pretty-prints a value as JSON for --json output.
func printJSON(
	v interface{},
) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logFatal("failed to marshal output", err)
	}
	fmt.Println(string(out))
}

// identityString renders an actor identity. Returns "" if the actor is unset.
func identityString(
	id *user.Identity,
) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%s <%s>", id.Name, id.Email)
}

// timeString renders an optional timestamp as RFC3339. Returns "" if nil.
func timeString(
	t *time.Time,
) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// displayResultDetail displays a single lab result.
// Used by the client result create, get, and status commands.
func displayResultDetail(
	v *result.View,
) {
	fmt.Println()
	printKV("Result ID", v.ID.String(), "Status", v.Status.String())
	printKV("Patient", v.PatientName)
	if v.PatientID != "" {
		printKV("Patient ID", v.PatientID)
	}
	printKV("Test Type", v.TestType, "Value", v.ResultValue)
	if v.Unit != "" || v.ReferenceRange != "" {
		printKV("Unit", v.Unit, "Reference Range", v.ReferenceRange)
	}
	if v.Notes != "" {
		printKV("Notes", v.Notes)
	}
	if v.UploadedBy != nil {
		printKV("Uploaded By", identityString(v.UploadedBy))
	}
	if v.ReviewedBy != nil {
		printKV("Reviewed By", identityString(v.ReviewedBy), "Reviewed At", timeString(v.ReviewedAt))
	}
	if v.ApprovedBy != nil {
		printKV("Approved By", identityString(v.ApprovedBy), "Approved At", timeString(v.ApprovedAt))
	}
	printKV("Created", v.CreatedAt.UTC().Format(time.RFC3339))
}

// resultSection builds the table section for a list of results.
func resultSection(
	views []result.View,
) section {
	rows := make([][]string, 0, len(views))
	for i := range views {
		v := &views[i]
		rows = append(rows, []string{
			v.ID.String(),
			v.PatientName,
			v.TestType,
			v.ResultValue,
			v.Status.String(),
			identityString(v.UploadedBy),
			v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return section{
		Title:   "Results",
		Headers: []string{"ID", "PATIENT", "TEST", "VALUE", "STATUS", "UPLOADED BY", "CREATED"},
		Rows:    rows,
	}
}

// userSection builds the table section for a list of users.
func userSection(
	users []user.User,
) section {
	rows := make([][]string, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, []string{
			u.ID.String(),
			u.Name,
			u.Email,
			u.Role.String(),
			u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return section{
		Title:   "Users",
		Headers: []string{"ID", "NAME", "EMAIL", "ROLE", "CREATED"},
		Rows:    rows,
	}
}
