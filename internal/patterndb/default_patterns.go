package patterndb

import "github.com/cassis-finance/cassis/internal/model"

// DefaultPatterns returns the built-in merchant pattern table, grouped by
// business category. Confidence values are prior belief strengths in (0,1],
// tuned so that well-known single-brand merchants sit above 0.90.
func DefaultPatterns() []model.PatternEntry {
	return []model.PatternEntry{
		// Streaming and subscriptions - FIXED
		{Pattern: "netflix", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.98},
		{Pattern: "spotify", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.98},
		{Pattern: "disney plus", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "disney+", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "canal+", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.96},
		{Pattern: "canalplus", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.96},
		{Pattern: "deezer", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "amazon prime", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "prime video", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "youtube premium", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "apple.com/bill", Tag: "abonnement", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "itunes", Tag: "abonnement", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.85},
		{Pattern: "ocs", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.85},
		{Pattern: "paramount+", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "crunchyroll", Tag: "streaming", Category: model.CategoryStreaming, ExpenseType: model.ExpenseFixed, Confidence: 0.95},

		// Supermarkets and groceries - VARIABLE
		{Pattern: "carrefour", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "auchan", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "leclerc", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "e.leclerc", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "intermarche", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "lidl", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "aldi", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "monoprix", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.94},
		{Pattern: "franprix", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.94},
		{Pattern: "casino", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "super u", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.94},
		{Pattern: "hyper u", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.94},
		{Pattern: "systeme u", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "grand frais", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "picard", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "biocoop", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "naturalia", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "boulangerie", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.88},
		{Pattern: "boucherie", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.88},
		{Pattern: "marche", Tag: "courses", Category: model.CategorySupermarket, ExpenseType: model.ExpenseVariable, Confidence: 0.70},

		// Restaurants and food delivery - VARIABLE
		{Pattern: "mcdonald", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "mcdo", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "burger king", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "kfc", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "quick", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.90},
		{Pattern: "subway", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "domino's", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "dominos pizza", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "pizza hut", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "uber eats", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "deliveroo", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.95},
		{Pattern: "just eat", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "restaurant", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "brasserie", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "bistrot", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "starbucks", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "paul", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.70},
		{Pattern: "sushi", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "kebab", Tag: "restaurant", Category: model.CategoryRestaurant, ExpenseType: model.ExpenseVariable, Confidence: 0.88},

		// Utilities - FIXED
		{Pattern: "edf", Tag: "electricite", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "edf gdf", Tag: "electricite", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "engie", Tag: "gaz", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "gdf suez", Tag: "gaz", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "total energies", Tag: "electricite", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.93},
		{Pattern: "totalenergies", Tag: "electricite", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.93},
		{Pattern: "veolia", Tag: "eau", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.96},
		{Pattern: "suez eau", Tag: "eau", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "saur", Tag: "eau", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.93},
		{Pattern: "enercoop", Tag: "electricite", Category: model.CategoryUtilities, ExpenseType: model.ExpenseFixed, Confidence: 0.94},

		// Telecom - FIXED
		{Pattern: "orange", Tag: "internet", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.92},
		{Pattern: "sfr", Tag: "internet", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "free mobile", Tag: "mobile", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "free telecom", Tag: "internet", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "freebox", Tag: "internet", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "bouygues telecom", Tag: "internet", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "sosh", Tag: "mobile", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "red by sfr", Tag: "mobile", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "b&you", Tag: "mobile", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.93},
		{Pattern: "prixtel", Tag: "mobile", Category: model.CategoryTelecom, ExpenseType: model.ExpenseFixed, Confidence: 0.92},

		// Transport - VARIABLE mostly, passes FIXED
		{Pattern: "sncf", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "ratp", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseFixed, Confidence: 0.88},
		{Pattern: "navigo", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "uber", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.88},
		{Pattern: "blablacar", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "bolt", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "velib", Tag: "transport", Category: model.CategoryTransport, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "total", Tag: "carburant", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.80},
		{Pattern: "esso", Tag: "carburant", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "shell", Tag: "carburant", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "avia", Tag: "carburant", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.88},
		{Pattern: "station service", Tag: "carburant", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.90},
		{Pattern: "autoroute", Tag: "peage", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.90},
		{Pattern: "vinci autoroutes", Tag: "peage", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "sanef", Tag: "peage", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "parking", Tag: "parking", Category: model.CategoryTransport, ExpenseType: model.ExpenseVariable, Confidence: 0.88},

		// Health - mixed
		{Pattern: "pharmacie", Tag: "sante", Category: model.CategoryHealth, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "doctolib", Tag: "sante", Category: model.CategoryHealth, ExpenseType: model.ExpenseVariable, Confidence: 0.90},
		{Pattern: "laboratoire", Tag: "sante", Category: model.CategoryHealth, ExpenseType: model.ExpenseVariable, Confidence: 0.85},
		{Pattern: "mutuelle", Tag: "mutuelle", Category: model.CategoryHealth, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "harmonie mutuelle", Tag: "mutuelle", Category: model.CategoryHealth, ExpenseType: model.ExpenseFixed, Confidence: 0.96},
		{Pattern: "mgen", Tag: "mutuelle", Category: model.CategoryHealth, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "alan", Tag: "mutuelle", Category: model.CategoryHealth, ExpenseType: model.ExpenseFixed, Confidence: 0.88},
		{Pattern: "cpam", Tag: "sante", Category: model.CategoryHealth, ExpenseType: model.ExpenseFixed, Confidence: 0.90},

		// Bank and insurance - FIXED
		{Pattern: "axa", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "maif", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "macif", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "matmut", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "gmf", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.93},
		{Pattern: "allianz", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "groupama", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "direct assurance", Tag: "assurance", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "credit agricole", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "bnp paribas", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "societe generale", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "banque populaire", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "caisse epargne", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "lcl", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.90},
		{Pattern: "boursorama", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.88},
		{Pattern: "fortuneo", Tag: "banque", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.88},
		{Pattern: "cotisation carte", Tag: "frais bancaires", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.92},
		{Pattern: "frais bancaires", Tag: "frais bancaires", Category: model.CategoryBank, ExpenseType: model.ExpenseFixed, Confidence: 0.94},

		// Shopping - VARIABLE
		{Pattern: "amazon", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.90},
		{Pattern: "fnac", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "darty", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "boulanger", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.88},
		{Pattern: "decathlon", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "zara", Tag: "vetements", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "h&m", Tag: "vetements", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "uniqlo", Tag: "vetements", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "kiabi", Tag: "vetements", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "zalando", Tag: "vetements", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},
		{Pattern: "ikea", Tag: "maison", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "leroy merlin", Tag: "bricolage", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "castorama", Tag: "bricolage", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.93},
		{Pattern: "cdiscount", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.90},
		{Pattern: "action", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.75},
		{Pattern: "sephora", Tag: "shopping", Category: model.CategoryShopping, ExpenseType: model.ExpenseVariable, Confidence: 0.92},

		// Housing and recurring obligations - FIXED
		{Pattern: "loyer", Tag: "loyer", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.97},
		{Pattern: "foncia", Tag: "loyer", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.93},
		{Pattern: "nexity", Tag: "loyer", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.92},
		{Pattern: "syndic", Tag: "charges copropriete", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.92},
		{Pattern: "basic fit", Tag: "sport", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "basic-fit", Tag: "sport", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "fitness park", Tag: "sport", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "neoness", Tag: "sport", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.94},
		{Pattern: "impots", Tag: "impots", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "dgfip", Tag: "impots", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
		{Pattern: "tresor public", Tag: "impots", Category: model.CategoryHousing, ExpenseType: model.ExpenseFixed, Confidence: 0.95},
	}
}
