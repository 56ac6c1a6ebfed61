package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/checkout"
	"github.com/noah-isme/vegshop/internal/purchase"
)

// Exit codes returned by the checkout command.
const (
	ExitSuccess          = 0
	ExitFileNotFound     = 1
	ExitProductNotFound  = 2
	ExitInvalidPrice     = 3
	ExitInvalidInputData = 4
	ExitInvalidQuantity  = 5
	ExitUnexpected       = 99
)

// ExitCodeFor maps a checkout failure to its process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		notFound *catalog.NotFoundError
		badPrice *catalog.InvalidPriceError
		badQty   *cart.InvalidQuantityError
		badRow   *purchase.InvalidRowError
	)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return ExitFileNotFound
	case errors.As(err, &notFound):
		return ExitProductNotFound
	case errors.As(err, &badPrice):
		return ExitInvalidPrice
	case errors.As(err, &badQty):
		return ExitInvalidQuantity
	case errors.As(err, &badRow),
		errors.Is(err, checkout.ErrEmptyPurchase),
		errors.Is(err, catalog.ErrEmptyCatalog):
		return ExitInvalidInputData
	default:
		return ExitUnexpected
	}
}

// ReportError writes a user-facing message for the failure and returns the
// exit code. Structured detail from typed errors is rendered here; the core
// never formats messages itself.
func ReportError(w io.Writer, err error) int {
	code := ExitCodeFor(err)
	if code == ExitSuccess {
		return code
	}
	var (
		notFound *catalog.NotFoundError
		badPrice *catalog.InvalidPriceError
		badQty   *cart.InvalidQuantityError
		badRow   *purchase.InvalidRowError
	)
	fmt.Fprintln(w)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(w, "ERROR: File not found - %v\n", err)
	case errors.As(err, &notFound):
		fmt.Fprintf(w, "ERROR: Product %q was not found in the catalog.\n", notFound.Name)
		fmt.Fprintln(w, "Please check your purchase file.")
	case errors.As(err, &badPrice):
		fmt.Fprintf(w, "ERROR: Invalid price %q for product %q.\n", badPrice.Raw, badPrice.Name)
		fmt.Fprintln(w, "Please check your products file.")
	case errors.As(err, &badQty):
		fmt.Fprintf(w, "ERROR: Invalid quantity %d for product %q.\n", badQty.Quantity, badQty.Product)
	case errors.As(err, &badRow):
		fmt.Fprintf(w, "ERROR: Invalid quantity %q for product %q.\n", badRow.Raw, badRow.Product)
		fmt.Fprintln(w, "Please check your purchase file.")
	case errors.Is(err, checkout.ErrEmptyPurchase):
		fmt.Fprintln(w, "ERROR: Purchase must contain at least one item.")
		fmt.Fprintln(w, "Please check your purchase file.")
	case errors.Is(err, catalog.ErrEmptyCatalog):
		fmt.Fprintln(w, "ERROR: No products found in the catalog.")
		fmt.Fprintln(w, "Please check your products file.")
	default:
		fmt.Fprintf(w, "UNEXPECTED ERROR: %v\n", err)
	}
	return code
}
