// Package cli provides the Cobra-based checkout command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noah-isme/vegshop/internal/cart"
	catalogpkg "github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/checkout"
	"github.com/noah-isme/vegshop/internal/config"
	"github.com/noah-isme/vegshop/internal/obs"
	"github.com/noah-isme/vegshop/internal/offer"
	"github.com/noah-isme/vegshop/internal/purchase"
	"github.com/noah-isme/vegshop/internal/render"
)

const (
	headerSeparator = "=========================================="
	headerTitle     = "     VEGETABLE SHOP - CHECKOUT SYSTEM     "
)

// NewRootCmd builds the checkout command. Positional args override the
// configured products and purchase file paths.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	var (
		save       bool
		offersFile string
	)
	cmd := &cobra.Command{
		Use:           "vegshop-checkout [products.csv] [purchase.csv]",
		Short:         "Price a purchase against the product catalog and print the receipt",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			productsFile := cfg.ProductsFile
			purchaseFile := cfg.PurchaseFile
			if len(args) > 0 {
				productsFile = args[0]
			}
			if len(args) > 1 {
				purchaseFile = args[1]
			}
			rulesFile := cfg.OffersFile
			if offersFile != "" {
				rulesFile = offersFile
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerSeparator)
			fmt.Fprintln(out, headerTitle)
			fmt.Fprintln(out, headerSeparator)
			fmt.Fprintln(out)

			logger.Info().Str("products_file", productsFile).Str("purchase_file", purchaseFile).Msg("starting checkout")

			for _, path := range []string{productsFile, purchaseFile} {
				if _, err := os.Stat(path); err != nil {
					logger.Error().Err(err).Str("path", path).Msg("input file not found")
					return err
				}
			}

			fmt.Fprintln(out, "Loading purchase data...")
			items, err := purchase.NewFileSource(purchaseFile).Items(cmd.Context())
			if err != nil {
				return err
			}

			repo := catalogpkg.NewFileRepository(productsFile)
			svc, err := checkout.NewService(repo, offerSource(rulesFile))
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Processing checkout...")
			receipt, err := svc.ProcessPurchase(cmd.Context(), items)
			if err != nil {
				return err
			}
			logger.Info().
				Int("lines", len(receipt.Items())).
				Int64("total_cents", receipt.Total()).
				Int64("discount_cents", receipt.TotalDiscount()).
				Msg("checkout completed")

			formatted := render.Console{CurrencySymbol: cfg.CurrencySymbol}.Format(receipt)
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatted)

			if save {
				path, err := saveReceipt(cfg.ReceiptsDir, formatted)
				if err != nil {
					logger.Error().Err(err).Msg("save receipt")
					fmt.Fprintf(out, "ERROR: Could not save receipt: %v\n", err)
				} else {
					fmt.Fprintf(out, "Receipt saved to: %s\n", path)
					logger.Info().Str("path", path).Msg("receipt saved")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "save the receipt to the receipts directory")
	cmd.Flags().StringVar(&offersFile, "offers", "", "YAML rule file overriding the built-in offers")
	return cmd
}

// offerSource returns the default hardcoded rules, or a file-backed set when
// a rules path is configured.
func offerSource(rulesFile string) checkout.OfferSource {
	if rulesFile == "" {
		return offer.DefaultSet
	}
	return func(c *cart.Cart, products []catalogpkg.Product) ([]offer.Offer, error) {
		pack, err := offer.LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
		return offer.BuildSet(pack, c, products)
	}
}

func saveReceipt(dir, formatted string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("receipt_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Execute runs the checkout command and returns its process exit code.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return ExitUnexpected
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	cmd := NewRootCmd(cfg, logger)
	if err := cmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("checkout failed")
		return ReportError(os.Stderr, err)
	}
	return ExitSuccess
}
