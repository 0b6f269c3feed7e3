package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/models"
	"github.com/maryjean/suggestion-box/internal/mailconfig"
)

func init() { //nolint: gochecknoinits
	setupCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure email settings for weekly reports",
	Long: `Setup walks through the SMTP account and crew recipient configuration
needed for weekly report emails and stores it in the suggestion database.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.ReadConfig(configPath)
		if err != nil {
			return err
		}

		db, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{})
		if err != nil {
			return err
		}

		if err = db.AutoMigrate(&models.ConfigEntry{}); err != nil {
			return err
		}

		return runSetup(cmd, db)
	},
}

func runSetup(cmd *cobra.Command, db *gorm.DB) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Suggestion Box - Email Configuration Setup")
	fmt.Fprintln(out, "==========================================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This will configure email settings for weekly reports.")
	fmt.Fprintln(out, "For Gmail, generate an App Password first (requires 2FA).")
	fmt.Fprintln(out)

	user := prompt(in, out, "SMTP account (email address): ")
	pass := prompt(in, out, "SMTP password / app password: ")

	settings := mailconfig.Settings{
		Transport: mailconfig.Transport{
			Host:   "smtp.gmail.com",
			Port:   587, //nolint: mnd
			Secure: false,
			Auth: mailconfig.Auth{
				User: user,
				Pass: pass,
			},
		},
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Crew email addresses (press Enter to skip one):")

	for _, role := range []string{
		"Captain",
		"Chief Officer",
		"Chief Engineer",
		"Chief Stew",
		"Second Engineer",
	} {
		addr := prompt(in, out, role+" email: ")
		if addr != "" {
			settings.CrewEmails = append(settings.CrewEmails, addr)
		}
	}

	if err := settings.Save(db); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Email configuration saved.")
	fmt.Fprintf(out, "SMTP account: %s\n", user)
	fmt.Fprintf(out, "Crew emails: %s\n", strings.Join(settings.CrewEmails, ", "))
	fmt.Fprintln(out, "Weekly reports are sent every Monday at 9 AM.")

	return nil
}

func prompt(in *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}

	return strings.TrimSpace(line)
}
