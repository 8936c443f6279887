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
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/retr0h/labresult/internal/client"
)

// clientAuthProfileCmd represents the clientAuthProfile command.
var clientAuthProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the authenticated account",
	Long:  `Retrieves the profile of the authenticated account via the REST API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		authHandler := handler.(client.AuthHandler)
		u, err := authHandler.Profile(ctx)
		if err != nil {
			logFatal("failed to get profile", err)
		}

		if jsonOutput {
			printJSON(u)
			return
		}

		fmt.Println()
		printKV("User ID", u.ID.String(), "Role", u.Role.String())
		printKV("Name", u.Name, "Email", u.Email)
		printKV("Created", u.CreatedAt.UTC().Format(time.RFC3339))
	},
}

func init() {
	clientAuthCmd.AddCommand(clientAuthProfileCmd)
}
