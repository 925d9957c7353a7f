package cmd

import (
	"fmt"

	valid "github.com/asaskevich/govalidator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/izza-m1/Secgap-Analyzer/internal/checker"
	"github.com/izza-m1/Secgap-Analyzer/internal/report"
	"github.com/izza-m1/Secgap-Analyzer/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run checks against a URL and print the results",
	Long: `Run one or all checks locally, without the API server.

Examples:
  secgap scan headers https://example.com
  secgap scan all https://example.com --format markdown`,
}

func init() {
	scanCmd.PersistentFlags().StringP("format", "f", defaultFormat, "Output format: text, json, yaml, markdown")

	scanCmd.AddCommand(
		newScanSubcommand("headers", "Score the security headers of a URL", scan.CheckHeaders),
		newScanSubcommand("cookies", "List the cookies a URL sets", scan.CheckCookies),
		newScanSubcommand("phishing", "Check a URL for common phishing patterns (offline)", scan.CheckPhishing),
		newScanSubcommand("all", "Run every check", scan.AllChecks...),
	)
	rootCmd.AddCommand(scanCmd)
}

func newScanSubcommand(name, short string, checks ...scan.Check) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <url>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], checks...)
		},
	}
}

func runScan(cmd *cobra.Command, target string, checks ...scan.Check) error {
	appCtx := getAppContext(cmd)

	format, err := report.ParseFormat(appCtx.Config.Scan.Format)
	if err != nil {
		return err
	}
	writer, err := report.NewWriter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// Malformed targets are still scanned so they surface as unreachable.
	if !valid.IsRequestURL(target) || !checker.HasScheme(target) {
		appCtx.Logger.Warn("target is not an absolute http(s) URL", zap.String("url", target))
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %q is not an absolute http(s) URL; scanning it anyway\n", colorWarn("!"), target)
	}

	suite := scan.NewSuite(newAnalyzer(appCtx.Config))
	rep, err := suite.Run(cmd.Context(), target, checks...)
	if err != nil {
		return err
	}

	appCtx.Logger.Debug("scan finished",
		zap.String("url", target),
		zap.Int("checks", len(checks)),
		zap.String("format", string(format)),
	)
	return writer.Write(rep)
}
