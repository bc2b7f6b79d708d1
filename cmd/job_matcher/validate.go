package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/profile"
	"github.com/jonathan/job-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate profile and job listing files",
	Long:  "Checks candidate profile and job listing files against their JSON Schemas and field rules without scoring anything.",
	RunE:  runValidate,
}

var (
	validateProfile string
	validateJobs    string
)

// errValidationFailed is returned after the individual failures have been printed
var errValidationFailed = errors.New("validation failed")

func init() {
	validateCmd.Flags().StringVarP(&validateProfile, "profile", "p", "", "Path to candidate profile JSON file")
	validateCmd.Flags().StringVarP(&validateJobs, "jobs", "j", "", "Path to job listings JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateProfile == "" && validateJobs == "" {
		return fmt.Errorf("at least one of --profile or --jobs must be provided")
	}

	out := cmd.OutOrStdout()
	failed := false

	check := func(label, path, schema string, load func(string) error) {
		if path == "" {
			return
		}
		if err := validateFile(path, schema, load); err != nil {
			failed = true
			_, _ = fmt.Fprintf(out, "Validation failed for %s %s:\n%v\n", label, path, err)
			return
		}
		_, _ = fmt.Fprintf(out, "Validation passed for %s %s\n", label, path)
	}

	check("profile", validateProfile, schemas.UserProfileSchema, func(path string) error {
		_, err := profile.LoadUserProfile(path)
		return err
	})
	check("jobs", validateJobs, schemas.JobListingsSchema, func(path string) error {
		_, err := profile.LoadJobListings(path)
		return err
	})

	if failed {
		return errValidationFailed
	}
	return nil
}

// validateFile checks a file against its schema when the schema can be found, then against the field rules.
func validateFile(path, schema string, load func(string) error) error {
	if schemaPath := schemas.ResolveSchemaPath(schema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return err
		}
	}
	return load(path)
}
