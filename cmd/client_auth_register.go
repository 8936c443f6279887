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

// clientAuthRegisterCmd represents the clientAuthRegister command.
var clientAuthRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Registers a new account via the REST API.

Accounts default to the lab_technician role when --role is not given.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		authHandler := handler.(client.AuthHandler)
		session, err := authHandler.Register(ctx, name, email, password, role)
		if err != nil {
			logFatal("failed to register", err)
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
	clientAuthCmd.AddCommand(clientAuthRegisterCmd)

	clientAuthRegisterCmd.PersistentFlags().
		StringP("name", "", "", "Display name for the new account")
	clientAuthRegisterCmd.PersistentFlags().
		StringP("email", "", "", "Email address for the new account")
	clientAuthRegisterCmd.PersistentFlags().
		StringP("password", "", "", "Password for the new account")
	clientAuthRegisterCmd.PersistentFlags().
		StringP("role", "", "", "Role for the new account (admin, doctor, lab_technician)")

	_ = clientAuthRegisterCmd.MarkPersistentFlagRequired("name")
	_ = clientAuthRegisterCmd.MarkPersistentFlagRequired("email")
	_ = clientAuthRegisterCmd.MarkPersistentFlagRequired("password")
}
