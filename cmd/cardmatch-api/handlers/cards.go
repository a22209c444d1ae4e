package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardmatch-ai/cardmatch/internal/catalog"
	"github.com/cardmatch-ai/cardmatch/internal/observability"
)

// CardsHandler serves read-only catalog listings.
type CardsHandler struct {
	logger *observability.Logger
	store  *catalog.Store
}

// NewCardsHandler creates a new catalog handler.
func NewCardsHandler(logger *observability.Logger, store *catalog.Store) *CardsHandler {
	return &CardsHandler{logger: logger, store: store}
}

// cardSummaryDTO is the wire shape of one catalog listing entry.
type cardSummaryDTO struct {
	Name             string   `json:"name"`
	Issuer           string   `json:"issuer"`
	Category         string   `json:"category"`
	AnnualFee        string   `json:"annual_fee"`
	IncomeTier       string   `json:"income_tier"`
	TravelValueScore float64  `json:"travel_value_score"`
	Airlines         []string `json:"associated_airlines"`
	ImageURL         string   `json:"image_url"`
}

// List handles GET /api/v1/cards.
func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	cards := h.store.Cards()
	out := make([]cardSummaryDTO, len(cards))
	for i, c := range cards {
		out[i] = cardSummaryDTO{
			Name:             c.Name,
			Issuer:           c.Issuer,
			Category:         c.Category,
			AnnualFee:        c.AnnualFee,
			IncomeTier:       c.IncomeTier,
			TravelValueScore: c.TravelValueScore,
			Airlines:         c.AssociatedAirlines,
			ImageURL:         c.ImageURL,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cards": out,
		"total": len(out),
	})
}

// Get handles GET /api/v1/cards/{name}, looking the card up by its exact
// display name.
func (h *CardsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	idx, ok := h.store.IndexByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Card not found")
		return
	}

	c := h.store.Card(idx)
	writeJSON(w, http.StatusOK, cardSummaryDTO{
		Name:             c.Name,
		Issuer:           c.Issuer,
		Category:         c.Category,
		AnnualFee:        c.AnnualFee,
		IncomeTier:       c.IncomeTier,
		TravelValueScore: c.TravelValueScore,
		Airlines:         c.AssociatedAirlines,
		ImageURL:         c.ImageURL,
	})
}
