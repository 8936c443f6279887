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

	"github.com/spf13/cobra"

	"github.com/retr0h/labresult/internal/client"
)

// clientAuthLoginCmd represents the clientAuthLogin command.
var clientAuthLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and obtain a bearer token",
	Long: `Authenticates against the REST API and prints the session token.

Place the token in the client's bearer_token configuration to authenticate
subsequent commands.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		authHandler := handler.(client.AuthHandler)
		session, err := authHandler.Login(ctx, email, password)
		if err != nil {
			logFatal("failed to login", err)
		}

		if jsonOutput {
			printJSON(session)
			return
		}

		fmt.Println()
		printKV("User ID", session.User.ID.String(), "Role", session.User.Role.String())
		printKV("Name", session.User.Name, "Email", session.User.Email)
		printKV("Token", session.Token)
	},
}

func init() {
	clientAuthCmd.AddCommand(clientAuthLoginCmd)

	clientAuthLoginCmd.PersistentFlags().
		StringP("email", "", "", "Email address to authenticate with")
	clientAuthLoginCmd.PersistentFlags().
		StringP("password", "", "", "Password to authenticate with")

	_ = clientAuthLoginCmd.MarkPersistentFlagRequired("email")
	_ = clientAuthLoginCmd.MarkPersistentFlagRequired("password")
}
