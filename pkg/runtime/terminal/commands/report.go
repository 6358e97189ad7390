package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/netops-tools/te-reporter/pkg/runtime/terminal/export"
	"github.com/netops-tools/te-reporter/pkg/services/collector"
	"github.com/netops-tools/te-reporter/pkg/services/config"
	"github.com/netops-tools/te-reporter/pkg/services/inventory"
	"github.com/netops-tools/te-reporter/pkg/services/thousandeyes"
	"github.com/netops-tools/te-reporter/pkg/services/usage"
	"github.com/netops-tools/te-reporter/pkg/store/workbook"
)

type ReportCmd struct {
	accountsFile string
	outDir       string
	prefix       string
	profile      string
	credsFile    string
	debug        bool
	reporter     *export.Reporter
}

// NewReportCmd builds the program's root command. Running the binary with no
// arguments performs a full report run; every flag has a usable default.
func NewReportCmd(reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "te-reporter",
		Short: "Collect ThousandEyes inventory and usage across account groups into an xlsx report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.accountsFile, "accounts", "a", "",
		fmt.Sprintf("Path to the account groups xlsx (default %q)", config.DefaultAccountsFile))
	cmd.Flags().StringVarP(&rc.outDir, "out-dir", "o", "",
		"Directory for the report file (default is the working directory)")
	cmd.Flags().StringVar(&rc.prefix, "prefix", "",
		fmt.Sprintf("Report filename prefix (default %q)", config.DefaultPrefix))
	cmd.Flags().StringVar(&rc.profile, "profile", "",
		fmt.Sprintf("Credentials profile to use when TE_API_KEY is unset (default %q)", config.DefaultProfile))
	cmd.Flags().StringVar(&rc.credsFile, "credentials", "",
		"Path to the credentials file (default is $HOME/.thousandeyes/credentials)")
	cmd.Flags().BoolVar(&rc.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	level := zerolog.InfoLevel
	if rc.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(config.Options{
		AccountsFile:    rc.accountsFile,
		OutputDir:       rc.outDir,
		Prefix:          rc.prefix,
		Profile:         rc.profile,
		CredentialsFile: rc.credsFile,
	})
	if err != nil {
		return err
	}

	client := thousandeyes.NewClient(thousandeyes.Settings{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
	})

	reportCollector := collector.NewCollector(collector.Dependencies{
		Accounts:  workbook.NewReader(cfg.AccountsFile),
		Inventory: inventory.NewExplorer(client),
		Usage:     usage.NewManager(client),
		Writer:    workbook.NewWriter(workbook.Settings{Dir: cfg.OutputDir, Prefix: cfg.Prefix}),
	})

	summary, err := reportCollector.Run(ctx)
	if err != nil {
		return fmt.Errorf("report run failed: %w", err)
	}

	return rc.reporter.Handle(summary)
}
