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

// clientUserListCmd represents the clientUserList command.
var clientUserListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Long:  `Lists all accounts via the REST API. Requires the admin role.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		userHandler := handler.(client.UserHandler)
		users, err := userHandler.ListUsers(ctx)
		if err != nil {
			logFatal("failed to list users", err)
		}

		if jsonOutput {
			printJSON(users)
			return
		}

		printStyledTable([]section{userSection(users)})
	},
}

func init() {
	clientUserCmd.AddCommand(clientUserListCmd)
}
