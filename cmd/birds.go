package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bird-herd/core/utils"
	"bird-herd/feature/birds"
	"bird-herd/feature/birds/models"

	"github.com/spf13/cobra"
)

var imagesFlag int

// birdsCmd runs the bird queries against the configured catalog and prints JSON.
var birdsCmd = &cobra.Command{
	Use:   "birds",
	Short: "Query the bird catalog from the command line",
}

var randomCmd = &cobra.Command{
	Use:   "random <region> <n>",
	Short: "Sample n random birds of a region",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegionQuery(cmd, args, birds.ModeRandom)
	},
}

var commonCmd = &cobra.Command{
	Use:   "common <region> <n>",
	Short: "Sample the n most abundant birds of a region",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegionQuery(cmd, args, birds.ModeTop)
	},
}

var genusCmd = &cobra.Command{
	Use:   "genus <name>",
	Short: "Sample every bird of a genus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBirdService(func(svc *birds.Service) ([]models.Bird, error) {
			return svc.GetByGenus(cmd.Context(), strings.TrimSpace(args[0]), imagesFlag)
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <name>[,<name>...]",
	Short: "Sample specific birds by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := utils.SplitNames(strings.Join(args, ","))
		return withBirdService(func(svc *birds.Service) ([]models.Bird, error) {
			return svc.GetByNames(cmd.Context(), names, imagesFlag)
		})
	},
}

var badImageCmd = &cobra.Command{
	Use:   "bad-image <filepath>",
	Short: "Exclude an image and print a replacement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBirdService(func(svc *birds.Service) ([]models.Bird, error) {
			return svc.MarkDeleted(cmd.Context(), strings.TrimSpace(args[0]))
		})
	},
}

func runRegionQuery(cmd *cobra.Command, args []string, mode birds.Mode) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: n must be an integer", birds.ErrInvalidInput)
	}
	region := utils.NormalizeRegion(args[0])
	return withBirdService(func(svc *birds.Service) ([]models.Bird, error) {
		return svc.GetBirds(cmd.Context(), region, n, imagesFlag, mode)
	})
}

func withBirdService(run func(*birds.Service) ([]models.Bird, error)) error {
	cfg, logg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	svc := birds.NewService(birds.NewStore(db), logg, nil, cfg.Database.QueryTimeout())
	result, err := run(svc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	birdsCmd.PersistentFlags().IntVar(&imagesFlag, "images", 1, "images per bird")
	birdsCmd.AddCommand(randomCmd, commonCmd, genusCmd, getCmd, badImageCmd)
	RootCmd.AddCommand(birdsCmd)
}
