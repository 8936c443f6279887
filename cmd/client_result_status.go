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
	"github.com/spf13/cobra"

	"github.com/retr0h/labresult/internal/client"
)

// clientResultStatusCmd represents the clientResultStatus command.
var clientResultStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Advance a result's workflow status",
	Long: `Advances a lab result through its workflow via the REST API.

Doctors mark Pending results as Reviewed; admins mark Reviewed results
as Approved.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		resultID, _ := cmd.Flags().GetString("result-id")
		status, _ := cmd.Flags().GetString("status")

		resultHandler := handler.(client.ResultHandler)
		updated, err := resultHandler.UpdateResultStatus(ctx, resultID, status)
		if err != nil {
			logFatal("failed to update status", err)
		}

		if jsonOutput {
			printJSON(updated)
			return
		}

		displayResultDetail(updated)
	},
}

func init() {
	clientResultCmd.AddCommand(clientResultStatusCmd)

	clientResultStatusCmd.PersistentFlags().
		StringP("result-id", "", "", "Result ID to update")
	clientResultStatusCmd.PersistentFlags().
		StringP("status", "", "", "Target status (Reviewed or Approved)")

	_ = clientResultStatusCmd.MarkPersistentFlagRequired("result-id")
	_ = clientResultStatusCmd.MarkPersistentFlagRequired("status")
}
