package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/poindexter12/maxwells-wallet/internal/encoding"
	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/importer"
	"github.com/poindexter12/maxwells-wallet/internal/importer/providers"
	"github.com/poindexter12/maxwells-wallet/internal/transaction"
	"github.com/poindexter12/maxwells-wallet/internal/xlsx"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Parse bank, card, and payment-app statement exports",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCmd(), newAnalyzeCmd(), newFormatsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newParseCmd() *cobra.Command {
	var (
		formatKey  string
		account    string
		configPath string
		savePath   string
		confirm    bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a statement file into normalized transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readStatement(args[0])
			if err != nil {
				return err
			}

			svc := importer.NewService(providers.Default())

			result, cfg, err := runParse(svc, raw, account, formatKey, configPath, confirm)
			if err != nil {
				return err
			}

			if result == nil {
				fmt.Println("aborted")
				return nil
			}

			if !result.Detected {
				fmt.Println(titleStyle.Render("Format could not be detected."))
				fmt.Println(dimStyle.Render("Run `wallet analyze` to inspect the file and build a config."))

				return nil
			}

			if savePath != "" && cfg != nil {
				out, err := format.EncodeYAML(cfg)
				if err != nil {
					return err
				}

				if err := os.WriteFile(savePath, out, 0o644); err != nil {
					return err
				}

				fmt.Println(dimStyle.Render("config saved to " + savePath))
			}

			printTransactions(result)

			return nil
		},
	}

	cmd.Flags().StringVar(&formatKey, "format", "", "force a registered format instead of detecting")
	cmd.Flags().StringVar(&account, "account", "", "account source label for the output")
	cmd.Flags().StringVar(&configPath, "config", "", "parse with a saved YAML config")
	cmd.Flags().StringVar(&savePath, "save-config", "", "write the detected config as YAML")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "show the detected config and confirm before parsing")

	return cmd
}

// runParse picks the parse path: explicit config file, forced format, or
// detection (optionally with an interactive confirmation of the synthesized
// config). The returned config is non-nil only when one was synthesized or
// loaded, so it can be saved.
func runParse(svc *importer.Service, raw, account, formatKey, configPath string, confirm bool) (*importer.Result, *format.Config, error) {
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, nil, err
		}

		cfg, err := format.DecodeYAML(data)
		if err != nil {
			return nil, nil, err
		}

		result, err := svc.ParseConfig(raw, cfg, account)

		return result, cfg, err
	}

	if formatKey != "" || !confirm {
		result, err := svc.Parse(raw, account, format.Key(formatKey))
		return result, nil, err
	}

	skip, _, ok := svc.DetectHeaderRow(raw)
	if !ok {
		return &importer.Result{Format: format.KeyUnknown}, nil, nil
	}

	analysis := svc.AnalyzeColumns(raw, skip)
	if analysis.Config == nil {
		return &importer.Result{Format: format.KeyUnknown}, nil, nil
	}

	out, err := format.EncodeYAML(analysis.Config)
	if err != nil {
		return nil, nil, err
	}

	fmt.Println(titleStyle.Render("Detected configuration:"))
	fmt.Println(string(out))

	proceed := true

	prompt := huh.NewConfirm().
		Title("Parse with this configuration?").
		Value(&proceed)

	if err := prompt.Run(); err != nil {
		return nil, nil, err
	}

	if !proceed {
		return nil, nil, nil
	}

	result, err := svc.ParseConfig(raw, analysis.Config, account)

	return result, analysis.Config, err
}

func newAnalyzeCmd() *cobra.Command {
	var skipRows int

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Preview format detection without parsing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readStatement(args[0])
			if err != nil {
				return err
			}

			svc := importer.NewService(providers.Default())

			skip := skipRows
			if skip < 0 {
				found, header, ok := svc.DetectHeaderRow(raw)
				if !ok {
					fmt.Println("no header row found")
					return nil
				}

				skip = found

				fmt.Printf("header at line %d: %s\n", skip, dimStyle.Render(header))
			}

			analysis := svc.AnalyzeColumns(raw, skip)

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Column", "Role", "Confidence"})

			for _, hint := range analysis.Hints {
				t.AppendRow(table.Row{hint.Ref.String(), hint.Role, fmt.Sprintf("%.2f", hint.Confidence)})
			}

			t.Render()

			if analysis.Config == nil {
				fmt.Println(dimStyle.Render("no usable date and amount columns; config not synthesized"))
				return nil
			}

			out, err := format.EncodeYAML(analysis.Config)
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("Suggested configuration:"))
			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().IntVar(&skipRows, "skip-rows", -1, "header line offset (default: auto-detect)")

	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List registered statement formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := importer.NewService(providers.Default())

			for _, key := range svc.Formats() {
				fmt.Println(key)
			}

			return nil
		},
	}
}

func readStatement(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return xlsx.ToDelimited(f)
	}

	return encoding.DecodeString(f)
}

func printTransactions(result *importer.Result) {
	fmt.Println(titleStyle.Render("Detected format: " + string(result.Format)))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Amount", "Merchant", "Description", "Category"})

	for _, tx := range result.Transactions {
		t.AppendRow(table.Row{
			tx.Date.Format("2006-01-02"),
			tx.Amount.StringFixed(2),
			tx.Merchant,
			truncate(tx.Description, 40),
			category(tx),
		})
	}

	t.Render()

	fmt.Println(dimStyle.Render(fmt.Sprintf("%d transactions", len(result.Transactions))))
}

func category(tx transaction.Transaction) string {
	if tx.SuggestedCategory != "" {
		return tx.SuggestedCategory
	}

	return tx.SourceCategory
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-1]) + "…"
}
