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

// clientResultCreateCmd represents the clientResultCreate command.
var clientResultCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Upload a new test result",
	Long: `Uploads a new test result via the REST API.

Requires the lab_technician role. New results start in the Pending status.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		patientName, _ := cmd.Flags().GetString("patient-name")
		patientID, _ := cmd.Flags().GetString("patient-id")
		testType, _ := cmd.Flags().GetString("test-type")
		value, _ := cmd.Flags().GetString("value")
		unit, _ := cmd.Flags().GetString("unit")
		referenceRange, _ := cmd.Flags().GetString("reference-range")
		notes, _ := cmd.Flags().GetString("notes")

		resultHandler := handler.(client.ResultHandler)
		created, err := resultHandler.CreateResult(ctx, client.CreateResultInput{
			PatientName:    patientName,
			PatientID:      patientID,
			TestType:       testType,
			ResultValue:    value,
			Unit:           unit,
			ReferenceRange: referenceRange,
			Notes:          notes,
		})
		if err != nil {
			logFatal("failed to create result", err)
		}

		if jsonOutput {
			printJSON(created)
			return
		}

		displayResultDetail(created)
	},
}

func init() {
	clientResultCmd.AddCommand(clientResultCreateCmd)

	clientResultCreateCmd.PersistentFlags().
		StringP("patient-name", "", "", "Name of the patient")
	clientResultCreateCmd.PersistentFlags().
		StringP("patient-id", "", "", "External patient identifier")
	clientResultCreateCmd.PersistentFlags().
		StringP("test-type", "", "", "Type of test performed")
	clientResultCreateCmd.PersistentFlags().
		StringP("value", "", "", "Measured result value")
	clientResultCreateCmd.PersistentFlags().
		StringP("unit", "", "", "Unit of the result value")
	clientResultCreateCmd.PersistentFlags().
		StringP("reference-range", "", "", "Normal reference range")
	clientResultCreateCmd.PersistentFlags().
		StringP("notes", "", "", "Free-form notes")

	_ = clientResultCreateCmd.MarkPersistentFlagRequired("patient-name")
	_ = clientResultCreateCmd.MarkPersistentFlagRequired("test-type")
	_ = clientResultCreateCmd.MarkPersistentFlagRequired("value")
}
