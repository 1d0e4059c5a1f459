// Command pricingctl runs the campaign pricing engine offline: compute a
// quote from flags, list the channel catalog, or print the industry
// conversion benchmarks. Intended for quick what-if runs without the API.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"server/internal/domain"
	"server/internal/pricing"
	"server/internal/report"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pricingctl",
		Short: "Campaign pricing engine CLI",
		Long: `pricingctl computes campaign quotes with the same pricing engine the API
uses: channel allocation, volume-banded costs, diminishing returns and
cost per acquisition.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(quoteCommand())
	rootCmd.AddCommand(channelsCommand())
	rootCmd.AddCommand(benchmarksCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func quoteCommand() *cobra.Command {
	var (
		input  domain.CampaignInput
		format string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a campaign quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			quote, err := pricing.Compute(input)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrReachExceeded) {
					return err
				}
				return fmt.Errorf("compute quote: %w", err)
			}

			switch format {
			case "json":
				return printJSON(cmd, quote)
			case "csv":
				return printQuoteCSV(cmd, quote, locale)
			case "table":
				return printQuoteTable(cmd, quote, locale)
			default:
				return fmt.Errorf("unknown format %q (want table, json or csv)", format)
			}
		},
	}

	cmd.Flags().IntVar(&input.TargetUsers, "users", 200_000, "target user base size")
	cmd.Flags().Float64Var(&input.BaseRate, "rate", 0.0549, "base conversion rate as a fraction")
	cmd.Flags().IntVar(&input.Allocation.SMSPct, "sms", 20, "SMS reach percentage")
	cmd.Flags().IntVar(&input.Allocation.AppPct, "app", 30, "app notification reach percentage")
	cmd.Flags().IntVar(&input.Allocation.EDMPct, "edm", 25, "EDM reach percentage")
	cmd.Flags().IntVar(&input.Schedule.StatementWeeks, "statement-weeks", 4, "statement insert booking in weeks")
	cmd.Flags().IntVar(&input.Schedule.BannerWeeks, "banner-weeks", 3, "web banner booking in weeks")
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json or csv")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale for formatted amounts (en or ms)")

	return cmd
}

func channelsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List the channel catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := pricing.Catalog()
			if format == "json" {
				return printJSON(cmd, catalog)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHANNEL\tKIND\tWEIGHT\tENGAGEMENT\tRECOMMENDED\tBASE COST")
			for _, e := range catalog {
				recommended := strconv.Itoa(e.Metrics.Recommended) + "%"
				baseCost := fmt.Sprintf("RM %.2f/user", e.BaseCost)
				if e.Metrics.Kind == domain.ChannelKindWeekly {
					recommended = strconv.Itoa(e.Metrics.Recommended) + "w"
					baseCost = fmt.Sprintf("RM %.2f/week", e.BaseCost)
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
					e.Channel, e.Metrics.Kind, e.Metrics.Weight, e.Metrics.Engagement, recommended, baseCost)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	return cmd
}

func benchmarksCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "Print the industry conversion benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "json" {
				return printJSON(cmd, domain.ConversionBenchmarks)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDUSTRY\tRANGE")
			for _, b := range domain.ConversionBenchmarks {
				fmt.Fprintf(w, "%s\t%.1f%% - %.1f%%\n", b.Industry, b.MinPct, b.MaxPct)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printQuoteCSV(cmd *cobra.Command, quote *domain.Quote, locale string) error {
	p := offlineProposal(quote, locale)
	data, err := report.CampaignReport(p, report.NewFormatter(locale))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func printQuoteTable(cmd *cobra.Command, quote *domain.Quote, locale string) error {
	f := report.NewFormatter(locale)
	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Target users\t%s\n", f.Count(float64(quote.Input.TargetUsers)))
	fmt.Fprintf(w, "Base conversion rate\t%s\n", f.Percent(quote.Input.BaseRate, 2))
	fmt.Fprintf(w, "Effectiveness score\t%.5f\n", quote.Effectiveness)
	fmt.Fprintf(w, "Diminishing factor\t%.4f\n", quote.DiminishingFactor)
	fmt.Fprintf(w, "Adjusted conversion rate\t%s\n", f.Percent(quote.AdjustedRate, 3))
	fmt.Fprintf(w, "Expected approvals\t%s\n", f.Count(quote.Approvals))
	fmt.Fprintf(w, "Setup cost\t%s\n", f.RM(quote.SetupCost))
	fmt.Fprintf(w, "Cost per targeted user\t%s\n", f.RMUnit(quote.CostPerUser))
	fmt.Fprintf(w, "Marketing cost\t%s\n", f.RM(quote.MarketingCost))
	fmt.Fprintf(w, "Cost per acquisition\t%s\n", f.RM(quote.CPA))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	lw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(lw, "CHANNEL\tQUANTITY\tUNIT COST\tTOTAL")
	for _, line := range quote.Lines {
		fmt.Fprintf(lw, "%s\t%s\t%s\t%s\n",
			line.Channel, f.Count(line.Quantity), f.RMUnit(line.UnitCost), f.RM(line.Total))
	}
	if err := lw.Flush(); err != nil {
		return err
	}

	for _, adv := range quote.Advisories {
		fmt.Fprintf(out, "\nnote: %s\n", adv.Message)
	}
	return nil
}

// offlineProposal wraps a quote in an unsaved proposal so the CSV renderer
// can be reused for CLI output.
func offlineProposal(quote *domain.Quote, locale string) *domain.Proposal {
	return &domain.Proposal{
		Reference: "OFFLINE",
		Locale:    locale,
		Input:     quote.Input,
		Quote:     *quote,
		CreatedAt: time.Now(),
	}
}
