package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/checkout"
	"github.com/noah-isme/vegshop/internal/purchase"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"file not found", fmt.Errorf("open products: %w", os.ErrNotExist), ExitFileNotFound},
		{"product not found", &catalog.NotFoundError{Name: "Potato"}, ExitProductNotFound},
		{"invalid price", &catalog.InvalidPriceError{Name: "Tomato", Raw: "abc"}, ExitInvalidPrice},
		{"invalid purchase row", &purchase.InvalidRowError{Product: "Tomato", Raw: "-1"}, ExitInvalidInputData},
		{"empty purchase", checkout.ErrEmptyPurchase, ExitInvalidInputData},
		{"empty catalog", catalog.ErrEmptyCatalog, ExitInvalidInputData},
		{"invalid quantity", &cart.InvalidQuantityError{Product: "Tomato", Quantity: 0}, ExitInvalidQuantity},
		{"unexpected", errors.New("boom"), ExitUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExitCodeFor(tc.err))
		})
	}
}

func TestExitCodeForWrappedErrors(t *testing.T) {
	err := fmt.Errorf("load catalog: %w", &catalog.InvalidPriceError{Name: "Tomato", Raw: "x"})
	require.Equal(t, ExitInvalidPrice, ExitCodeFor(err))
}

func TestReportErrorMessages(t *testing.T) {
	var buf bytes.Buffer
	code := ReportError(&buf, &catalog.NotFoundError{Name: "Potato"})
	require.Equal(t, ExitProductNotFound, code)
	require.Contains(t, buf.String(), `Product "Potato" was not found`)

	buf.Reset()
	code = ReportError(&buf, &purchase.InvalidRowError{Product: "Tomato", Raw: "-3"})
	require.Equal(t, ExitInvalidInputData, code)
	require.Contains(t, buf.String(), `Invalid quantity "-3"`)

	buf.Reset()
	code = ReportError(&buf, errors.New("boom"))
	require.Equal(t, ExitUnexpected, code)
	require.Contains(t, buf.String(), "UNEXPECTED ERROR")
}
