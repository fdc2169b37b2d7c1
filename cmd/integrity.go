package cmd

import (
	"context"
	"fmt"

	"bird-herd/core/storage"
	"bird-herd/feature/birds"
	"bird-herd/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the catalog schema and the image bucket",
	Long:  `Checks that the catalog tables match the expected schema and that every eligible image exists in the storage bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Check and fix images missing from the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	imagesCmd.Flags().BoolVar(&fixFlag, "fix", false, "exclude images whose object is missing")
	integrityCmd.AddCommand(schemaCmd, imagesCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(ctx context.Context, runSchema, runImages bool) error {
	cfg, logg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	var client storage.Client
	if runImages {
		if !cfg.Storage.Enabled {
			return fmt.Errorf("image check needs STORAGE_ENABLED=true")
		}
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return err
		}
	}

	svc := integrity.NewService(client, cfg.Storage, birds.NewStore(db), db, nil, logg)

	if runSchema {
		logg.Info("Checking catalog schema...", zap.String("dialect", db.Dialector.Name()))
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Catalog schema matches expected definition.")
		} else {
			logg.Warn("Catalog schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runImages {
		logg.Info("Checking images against the bucket (this might take a while)...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckImages(ctx, fixFlag)
		if err != nil {
			return err
		}
		if !report.Populated {
			logg.Warn("No objects found under the storage prefix", zap.String("prefix", cfg.Storage.Prefix))
		}
		switch report.Status {
		case "ok":
			logg.Info("Every eligible image is present.", zap.Int("checked", report.Checked))
		case "fixed":
			logg.Info("Excluded images with missing objects",
				zap.Int("checked", report.Checked),
				zap.Strings("excluded", report.Excluded))
		default:
			logg.Warn("Images with missing objects",
				zap.Int("checked", report.Checked),
				zap.Strings("missing", report.Missing))
			logg.Info("Run with --fix to exclude them.")
		}
	}
	return nil
}
