package content

import (
	"hash/fnv"
	"sort"

	"startify/internal/domain"
)

// marketSizeLabels holds the display figures for the insights card, keyed by
// the lowercase industry keyword.
var marketSizeLabels = map[string]string{
	"healthcare":  "$374B",
	"education":   "$89B",
	"fintech":     "$179B",
	"agritech":    "$47B",
	"retail":      "$56B",
	"food":        "$43B",
	"proptech":    "$31B",
	"legal":       "$27B",
	"saas":        "$195B",
	"ecommerce":   "$5.7T",
	"marketplace": "$335B",
}

const defaultMarketSizeLabel = "$25B"

var growthBands = []string{"10-15%", "15-25%", "25-35%"}

var competitionLevels = []string{"Low", "Medium", "High"}

var fundingBands = map[string]string{
	"Low":    "$250K-500K",
	"Medium": "$500K-1M",
	"High":   "$1M-2M",
}

// stableHash gives a deterministic bucket for an industry keyword. It stands
// in for live trend data so the insights vary by industry but never between
// runs.
func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Insights produces the market insight card for an industry.
func Insights(p ParsedIdea) domain.MarketInsights {
	size, ok := marketSizeLabels[p.Industry]
	if !ok {
		size = defaultMarketSizeLabel
	}
	competition := competitionLevels[stableHash(p.Industry)%3]
	growth := growthBands[stableHash(p.Industry+"/trend")%3]
	return domain.MarketInsights{
		MarketSize:  size,
		Growth:      growth + " CAGR",
		Competition: competition,
		Timeline:    "6-12 months",
		Funding:     fundingBands[competition],
	}
}

type pooledInvestor struct {
	record domain.InvestorRecord
	focus  []string
}

// investorPool is the curated illustrative investor set. Focus keywords use
// the same lowercase vocabulary as the parser.
var investorPool = []pooledInvestor{
	{
		record: domain.InvestorRecord{
			Name: "Sarah Chen", Firm: "Sequoia Capital", Stage: "Series A-B",
			Description: "Partner with 15+ years investing in health & wellness startups",
			Portfolio:   []string{"Peloton", "Calm", "Headspace", "Noom", "Whoop"},
		},
		focus: []string{"fitness", "healthcare", "wellness"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Michael Rodriguez", Firm: "Andreessen Horowitz", Stage: "Seed-Series A",
			Description: "General Partner specializing in fintech and blockchain innovations",
			Portfolio:   []string{"Coinbase", "Robinhood", "Plaid", "Stripe", "Brex"},
		},
		focus: []string{"fintech", "enterprise", "crypto"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Emily Watson", Firm: "Accel Partners", Stage: "Seed-Series B",
			Description: "Principal investor focused on marketplace and e-commerce platforms",
			Portfolio:   []string{"Instacart", "DoorDash", "Etsy", "Spotify", "Slack"},
		},
		focus: []string{"ecommerce", "marketplace", "logistics"},
	},
	{
		record: domain.InvestorRecord{
			Name: "David Park", Firm: "Kleiner Perkins", Stage: "Series A-C",
			Description: "Senior Partner with deep expertise in healthcare and biotech ventures",
			Portfolio:   []string{"23andMe", "Moderna", "Oscar Health", "Livongo", "Glooko"},
		},
		focus: []string{"healthcare", "biotech", "medtech"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Lisa Thompson", Firm: "Greylock Partners", Stage: "Seed-Series A",
			Description: "Partner investing in education technology and lifelong learning platforms",
			Portfolio:   []string{"Coursera", "Duolingo", "Quizlet", "Outschool", "Kahoot"},
		},
		focus: []string{"education", "edtech", "learning"},
	},
	{
		record: domain.InvestorRecord{
			Name: "James Wilson", Firm: "Benchmark Capital", Stage: "Seed-Series B",
			Description: "Partner focused on consumer mobile and social applications",
			Portfolio:   []string{"Instagram", "Snap", "Discord", "Nextdoor", "Strava"},
		},
		focus: []string{"consumer", "mobile", "social"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Rachel Green", Firm: "Lightspeed Venture", Stage: "Series A-B",
			Description: "Principal specializing in enterprise SaaS and productivity tools",
			Portfolio:   []string{"Affirm", "Nutanix", "AppDynamics", "Carta", "Mulesoft"},
		},
		focus: []string{"enterprise", "saas", "productivity"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Tom Anderson", Firm: "Index Ventures", Stage: "Seed-Series A",
			Description: "Early-stage investor in cryptocurrency and blockchain startups",
			Portfolio:   []string{"Revolut", "Robinhood", "TransferWise", "Blockchain.com", "Ledger"},
		},
		focus: []string{"fintech", "crypto", "blockchain"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Nina Patel", Firm: "First Round Capital", Stage: "Seed",
			Description: "Seed-stage investor backing consumer and marketplace startups",
			Portfolio:   []string{"Uber", "Warby Parker", "Roblox", "Notion", "Square"},
		},
		focus: []string{"consumer", "marketplace", "mobile"},
	},
	{
		record: domain.InvestorRecord{
			Name: "Alex Kumar", Firm: "Y Combinator", Stage: "Seed",
			Description: "Partner supporting early-stage tech startups",
			Portfolio:   []string{"Airbnb", "Dropbox", "Reddit", "Twitch", "Instacart"},
		},
		focus: []string{"general", "technology", "innovation"},
	},
}

// matchScore ranks an investor against the industry keyword: a direct focus
// match outranks a generalist, which outranks everyone else.
func matchScore(inv pooledInvestor, industry string) int {
	for _, f := range inv.focus {
		if f == industry {
			return 95
		}
	}
	for _, f := range inv.focus {
		if f == "general" || f == "technology" {
			return 70
		}
	}
	return 50
}

// MatchInvestors returns the five best-matching investors for the industry.
// Ties keep pool order, so the output is fully deterministic.
func MatchInvestors(p ParsedIdea) []domain.InvestorRecord {
	type scored struct {
		inv   pooledInvestor
		score int
	}
	ranked := make([]scored, len(investorPool))
	for i, inv := range investorPool {
		ranked[i] = scored{inv: inv, score: matchScore(inv, p.Industry)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]domain.InvestorRecord, 0, 5)
	for _, r := range ranked[:5] {
		rec := r.inv.record
		rec.Focus = r.inv.focus
		out = append(out, rec)
	}
	return out
}
