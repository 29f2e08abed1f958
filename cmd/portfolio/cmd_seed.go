package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/seed"
)

var (
	seedFile  string
	seedClear bool
)

// seedCmd loads sample or user supplied content
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load portfolio content from YAML",
	Long: `Load portfolio content into the database.

Without --file the built-in sample data set is used. With --clear all
existing content (about, skills, projects, certificates, experience and
education) is deleted first. Contact messages are never touched.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed YAML file (default: built-in sample)")
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "Delete existing content before loading")
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := loadSeedData(seedFile)
	if err != nil {
		return err
	}

	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}
	defer log.Sync()

	conn, err := bootstrap.OpenDB(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	admin := service.NewAdminService(bootstrap.NewStores(conn), log)
	clearFn := func(ctx context.Context) error { return repository.ClearContent(ctx, conn) }

	res, err := seed.NewSeeder(admin, clearFn, log).Run(cmd.Context(), data, seedClear)
	if err != nil {
		return err
	}
	printSeedResult(cmd.OutOrStdout(), res)
	return nil
}

func loadSeedData(path string) (*seed.Data, error) {
	if path == "" {
		return seed.Sample()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return seed.Parse(f)
}

func printSeedResult(w io.Writer, res *seed.Result) {
	if res.About {
		fmt.Fprintln(w, "about:         saved")
	}
	fmt.Fprintf(w, "skills:        %d\n", res.Skills)
	fmt.Fprintf(w, "projects:      %d (%d images)\n", res.Projects, res.Images)
	fmt.Fprintf(w, "certificates:  %d\n", res.Certificates)
	fmt.Fprintf(w, "experiences:   %d\n", res.Experiences)
	fmt.Fprintf(w, "education:     %d\n", res.Education)
}
