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

	"github.com/spf13/cobra"

	"github.com/retr0h/labresult/internal/client"
	"github.com/retr0h/labresult/internal/result"
)

// clientResultExportCmd represents the clientResultExport command.
var clientResultExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export visible lab results to a file",
	Long: `Export lab results to a file for retention or downstream processing.

Fetches visible results via the REST API and writes each result as a JSON
line (JSONL format). The set exported follows the authenticated account's
role scope.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		status, _ := cmd.Flags().GetString("status")
		output, _ := cmd.Flags().GetString("output")

		resultHandler := handler.(client.ResultHandler)
		results, err := resultHandler.ListResults(ctx, status)
		if err != nil {
			logFatal("failed to list results", err)
		}

		if err := writeResultExport(output, results); err != nil {
			logFatal("failed to write export", err)
		}

		fmt.Println()
		printKV("Exported", fmt.Sprintf("%d results", len(results)), "File", output)
	},
}

// writeResultExport writes one JSON line per result to the given path.
func writeResultExport(
	path string,
	results []result.View,
) error {
	f, err := appFs.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}

	return nil
}

func init() {
	clientResultCmd.AddCommand(clientResultExportCmd)

	clientResultExportCmd.PersistentFlags().
		StringP("status", "", "", "Filter by status (Pending, Reviewed, Approved)")
	clientResultExportCmd.PersistentFlags().
		StringP("output", "o", "results.jsonl", "Path of the export file")
}
