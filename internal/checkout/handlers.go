package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/vegshop/internal/cart"
	"github.com/noah-isme/vegshop/internal/catalog"
	"github.com/noah-isme/vegshop/internal/common"
	"github.com/noah-isme/vegshop/internal/obs"
	"github.com/noah-isme/vegshop/internal/purchase"
)

// Handler wires the checkout service to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
	Logger   zerolog.Logger
}

// QuoteItem is one purchase entry in a quote request. Quantity range is
// enforced by the cart, so a non-positive qty surfaces as INVALID_QUANTITY
// rather than a validation failure.
type QuoteItem struct {
	Product string `json:"product" validate:"required"`
	Qty     int    `json:"qty"`
}

// QuoteRequest is the body of POST /api/v1/checkout/quote.
type QuoteRequest struct {
	Items []QuoteItem `json:"items" validate:"required,min=1,dive"`
}

// QuoteLine mirrors a receipt line in the response.
type QuoteLine struct {
	Product   string `json:"product"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// QuoteOffer mirrors an applied offer in the response.
type QuoteOffer struct {
	Description string `json:"description"`
	Discount    int64  `json:"discount"`
}

// QuoteResponse is the priced receipt returned to the caller. Amounts are in
// minor units.
type QuoteResponse struct {
	ID            string       `json:"id"`
	Items         []QuoteLine  `json:"items"`
	Offers        []QuoteOffer `json:"offers"`
	Subtotal      int64        `json:"subtotal"`
	TotalDiscount int64        `json:"totalDiscount"`
	Total         int64        `json:"total"`
}

// Quote prices a purchase list without any side effects.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "checkout service not configured", nil)
		return
	}
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			obs.CountQuote("invalid")
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid quote request", err.Error())
			return
		}
	}

	items := make([]purchase.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, purchase.Item{Product: it.Product, Quantity: it.Qty})
	}

	receipt, err := h.Svc.ProcessPurchase(r.Context(), items)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := QuoteResponse{
		ID:            uuid.NewString(),
		Items:         make([]QuoteLine, 0, len(receipt.Items())),
		Offers:        make([]QuoteOffer, 0, len(receipt.AppliedOffers())),
		Subtotal:      receipt.Subtotal(),
		TotalDiscount: receipt.TotalDiscount(),
		Total:         receipt.Total(),
	}
	for _, line := range receipt.Items() {
		resp.Items = append(resp.Items, QuoteLine{
			Product:   line.Product.Name(),
			Qty:       line.Quantity,
			UnitPrice: line.Product.Price(),
			LineTotal: line.Total(),
		})
	}
	for _, applied := range receipt.AppliedOffers() {
		resp.Offers = append(resp.Offers, QuoteOffer{Description: applied.Description, Discount: applied.Discount})
	}

	obs.CountQuote("ok")
	obs.ObserveQuoteDiscount(receipt.TotalDiscount())
	common.Data(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	common.RenderError(w, h.mapError(err))
}

// mapError translates domain failures into their HTTP representation.
func (h *Handler) mapError(err error) *common.AppError {
	var notFound *catalog.NotFoundError
	var badQty *cart.InvalidQuantityError
	switch {
	case errors.As(err, &notFound):
		obs.CountQuote("not_found")
		return common.NewAppError("PRODUCT_NOT_FOUND", "product not found in catalog", http.StatusNotFound, err).
			WithDetails(map[string]string{"product": notFound.Name})
	case errors.Is(err, ErrEmptyPurchase):
		obs.CountQuote("invalid")
		return common.NewAppError("EMPTY_PURCHASE", "purchase must contain at least one item", http.StatusUnprocessableEntity, err)
	case errors.As(err, &badQty):
		obs.CountQuote("invalid")
		return common.NewAppError("INVALID_QUANTITY", "quantity must be positive", http.StatusUnprocessableEntity, err).
			WithDetails(map[string]any{"product": badQty.Product, "quantity": badQty.Quantity})
	case errors.Is(err, catalog.ErrEmptyCatalog):
		obs.CountQuote("error")
		return common.NewAppError("EMPTY_CATALOG", "product catalog is empty", http.StatusServiceUnavailable, err)
	default:
		obs.CountQuote("error")
		h.Logger.Error().Err(err).Msg("quote failed")
		return common.NewAppError("INTERNAL", "failed to price purchase", http.StatusInternalServerError, err)
	}
}
