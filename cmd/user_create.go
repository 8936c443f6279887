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

	"github.com/retr0h/labresult/internal/storage"
	"github.com/retr0h/labresult/internal/user"
)

// userCreateCmd represents the userCreate command.
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user directly in the database",
	Long: `Create a user without going through the HTTP API. Intended for
bootstrapping the first admin account.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		roleName, _ := cmd.Flags().GetString("role")

		role, err := user.ParseRole(roleName)
		if err != nil {
			logFatal("invalid role", err)
		}

		if len(password) < user.MinPasswordLength {
			logFatal("invalid password", fmt.Errorf(
				"password must be at least %d characters", user.MinPasswordLength,
			))
		}

		hash, err := user.HashPassword(password)
		if err != nil {
			logFatal("failed to hash password", err)
		}

		db, err := storage.Open(appConfig.Database, logger)
		if err != nil {
			logFatal("failed to open database", err)
		}

		if err := storage.Migrate(db, logger); err != nil {
			logFatal("failed to migrate database", err)
		}

		userStore := user.NewGormStore(db, logger)
		u := &user.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
		}

		if err := userStore.Create(ctx, u); err != nil {
			logFatal("failed to create user", err)
		}

		fmt.Println()
		printKV("ID", u.ID.String(), "Role", u.Role.String())
		printKV("Name", u.Name, "Email", u.Email)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)

	userCreateCmd.PersistentFlags().StringP("name", "n", "", "Display name for the user")
	userCreateCmd.PersistentFlags().StringP("email", "e", "", "Email for the user")
	userCreateCmd.PersistentFlags().StringP("password", "p", "", "Password for the user")
	userCreateCmd.PersistentFlags().
		StringP("role", "r", user.DefaultRole.String(), "Role for the user (admin, doctor, lab_technician)")

	_ = userCreateCmd.MarkPersistentFlagRequired("name")
	_ = userCreateCmd.MarkPersistentFlagRequired("email")
	_ = userCreateCmd.MarkPersistentFlagRequired("password")
}
