// Package catalog holds the static product catalog. Products are compiled in:
// the storefront sells a fixed, small set of digital products and services,
// so there is no product store and no admin CRUD for it.
package catalog

import "github.com/garsabers/storefront/app/models"

// Products is the full catalog across both storefront variants: the trading
// playbook (a downloadable PDF with a chapter list) and the done-for-you
// Shopify store tiers (delivered as a live store URL on the invoice).
var Products = []models.Product{
	{
		ID:          "prod_pf_playbook",
		Name:        "Perpetual Futures Playbook",
		Price:       250,
		Level:       1,
		Tagline:     "Master crypto perps and traditional futures with systematic precision.",
		Description: "Transform chaotic leverage into a structured framework. Focus on risk, funding rates, and execution.",
		Features: []string{
			"Perpetual Playbook Framework",
			"Funding & Basis Strategy Module",
			"Liquidity Buffer Calculator",
			"Execution Checklist for Entries / TP / SL",
			"Scaling & Pyramiding Plans",
			"Futures Risk + Drawdown Guardrails",
		},
		Chapters: []models.Chapter{
			{
				Title:  "Core Futures Foundations",
				Points: []string{"Futures vs. Spot vs. Margin", "Leverage mechanics & margin types", "Notional value vs. Collateral"},
			},
			{
				Title:  "Perpetual Swap Mechanics",
				Points: []string{"The role of the funding rate", "Price discovery in perps", "Mark price vs. Index price"},
			},
			{
				Title:  "Funding Rate & Basis Strategies",
				Points: []string{"Exploiting funding rate arbitrage", "Basis trading for market-neutral yield", "Funding-aware entries"},
			},
			{
				Title:  "Risk, Margin & Liquidation Guardrails",
				Points: []string{"Calculating liquidation price manually", "The 3-layer stop system", "Dynamic position sizing"},
			},
			{
				Title:  "Execution Playbooks & Checklists",
				Points: []string{"The Trend-Following Perp Setup", "Mean Reversion in high-funding regimes", "Breakout validation rules"},
			},
			{
				Title:  "Scaling, Compounding & Risk Caps",
				Points: []string{"Pyramiding into winners safely", "Profit taking ladders", "Equity curve draw-down caps"},
			},
		},
	},
	{
		ID:          "prod_1",
		Name:        "Basic Shopify Store",
		Price:       100,
		Level:       1,
		Tagline:     "A clean one-product store, ready to sell.",
		Description: "Theme setup, one product page, payment and shipping configuration.",
	},
	{
		ID:          "prod_2",
		Name:        "Starter Shopify Store",
		Price:       250,
		Level:       2,
		Tagline:     "A branded starter store for your first catalog.",
		Description: "Custom branding, up to ten products, basic apps and analytics.",
	},
	{
		ID:          "prod_3",
		Name:        "Growth Shopify Store",
		Price:       500,
		Level:       3,
		Tagline:     "Conversion-optimized store with email flows.",
		Description: "Full catalog import, upsell apps, email automation, SEO basics.",
	},
	{
		ID:          "prod_4",
		Name:        "Premium Shopify Store",
		Price:       1000,
		Level:       4,
		Tagline:     "The complete done-for-you ecommerce build.",
		Description: "Custom theme work, full catalog, automation, launch support and handover call.",
	},
}

// FindByID returns the catalog product with the given id.
func FindByID(id string) (models.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// First returns the first catalog product. The ebook renderer falls back to it
// when asked for an unknown product id.
func First() models.Product {
	return Products[0]
}
