package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

// aboutCmd inspects or creates the site owner's profile
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Inspect or create the About profile",
}

var aboutCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the About profile, or report that it is missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(admin *service.AdminService) error {
			a, err := admin.GetAbout(cmd.Context())
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No About profile found. Run 'portfolio about setup' to create one.")
				return nil
			}
			if err != nil {
				return err
			}
			printAbout(cmd.OutOrStdout(), a)
			return nil
		})
	},
}

var aboutSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the default About profile if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdmin(cmd, func(admin *service.AdminService) error {
			a, err := admin.SetupAbout(cmd.Context())
			if errors.Is(err, domain.ErrAboutAlreadyExists) {
				fmt.Fprintln(cmd.OutOrStdout(), "About profile already exists, nothing to do.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created default About profile. Edit it with PUT /admin/api/about.")
			printAbout(cmd.OutOrStdout(), a)
			return nil
		})
	},
}

func init() {
	aboutCmd.AddCommand(aboutCheckCmd)
	aboutCmd.AddCommand(aboutSetupCmd)
}

func withAdmin(cmd *cobra.Command, fn func(*service.AdminService) error) error {
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

	return fn(service.NewAdminService(bootstrap.NewStores(conn), log))
}

func printAbout(w io.Writer, a *domain.About) {
	or := func(s string) string {
		if s == "" {
			return "(empty)"
		}
		return s
	}
	fmt.Fprintf(w, "Name:                 %s\n", a.Name)
	fmt.Fprintf(w, "Title:                %s\n", a.Title)
	fmt.Fprintf(w, "Email:                %s\n", a.Email)
	fmt.Fprintf(w, "Profile image:        %s\n", or(a.ProfileImageURL))
	fmt.Fprintf(w, "Hero heading:         %s\n", or(a.HeroHeading))
	fmt.Fprintf(w, "Hero tagline:         %s\n", or(a.HeroTagline))
	fmt.Fprintf(w, "Hero CTA primary:     %s\n", or(a.HeroCTAPrimary))
	fmt.Fprintf(w, "Hero CTA secondary:   %s\n", or(a.HeroCTASecondary))
	fmt.Fprintf(w, "Show profile picture: %t\n", a.ShowProfilePicture)
	fmt.Fprintf(w, "Available:            %t (%s)\n", a.AvailabilityStatus, or(a.AvailabilityText))
}
