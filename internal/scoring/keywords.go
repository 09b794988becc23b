package scoring

// Keyword weight tables. Positive tables lean FIXED, negative tables lean
// VARIABLE. Weights reflect how discriminative a keyword is on its own.

func defaultFixedKeywords() map[string]float64 {
	return map[string]float64{
		"abonnement":     0.90,
		"subscription":   0.90,
		"prelevement":    0.85,
		"prlv":           0.80,
		"domiciliation":  0.80,
		"mensualite":     0.85,
		"mensuel":        0.70,
		"forfait":        0.75,
		"facture":        0.60,
		"echeance":       0.75,
		"cotisation":     0.80,
		"loyer":          0.95,
		"assurance":      0.90,
		"mutuelle":       0.90,
		"netflix":        0.90,
		"spotify":        0.90,
		"deezer":         0.85,
		"canal":          0.70,
		"edf":            0.90,
		"engie":          0.90,
		"veolia":         0.85,
		"internet":       0.70,
		"fibre":          0.75,
		"mobile":         0.60,
		"telecom":        0.70,
		"navigo":         0.85,
		"impots":         0.85,
		"credit":         0.60,
		"pret":           0.70,
		"salle de sport": 0.80,
	}
}

func defaultVariableKeywords() map[string]float64 {
	return map[string]float64{
		"courses":     0.80,
		"supermarche": 0.85,
		"carrefour":   0.80,
		"auchan":      0.80,
		"leclerc":     0.80,
		"lidl":        0.80,
		"restaurant":  0.85,
		"brasserie":   0.80,
		"cafe":        0.60,
		"bar":         0.55,
		"mcdo":        0.80,
		"retrait":     0.90,
		"dab":         0.85,
		"especes":     0.80,
		"essence":     0.80,
		"carburant":   0.80,
		"station":     0.55,
		"parking":     0.70,
		"peage":       0.70,
		"pharmacie":   0.70,
		"amazon":      0.65,
		"fnac":        0.70,
		"zara":        0.70,
		"vetement":    0.70,
		"cadeau":      0.65,
		"boulangerie": 0.75,
		"tabac":       0.70,
		"cinema":      0.70,
		"livraison":   0.60,
	}
}

// Merchant regex patterns. A match contributes +-0.8 to the merchant factor.

func defaultFixedMerchantPatterns() []string {
	return []string{
		`edf\s+gdf`,
		`\bengie\b`,
		`\bfree\s+(mobile|telecom|hautdebit)\b`,
		`\bbouygues\s+tel`,
		`\bsfr\b`,
		`assurances?\s+\w+`,
		`mutuelle\s+\w+`,
		`\bloyer\b`,
		`\bsyndic\b`,
		`prlv\s+sepa`,
		`\bdgfip\b`,
	}
}

func defaultVariableMerchantPatterns() []string {
	return []string{
		`restaurant\s+\w+`,
		`brasserie\s+\w+`,
		`boulangerie\s+\w+`,
		`retrait\s+(dab|gab|especes)`,
		`station\s+service`,
		`\bsupermarche\b`,
		`marche\s+\w+`,
	}
}

// Curated n-gram hints. Signed weights lean FIXED when positive and VARIABLE
// when negative; hits are averaged and halved to limit their influence.
func defaultNGramHints() map[string]float64 {
	return map[string]float64{
		"abonnement netflix":       0.95,
		"abonnement mensuel":       0.90,
		"abonnement annuel":        0.85,
		"prelevement automatique":  0.90,
		"prelevement sepa":         0.85,
		"facture electricite":      0.90,
		"facture energie":          0.90,
		"forfait mobile":           0.85,
		"box internet":             0.85,
		"assurance habitation":     0.90,
		"assurance auto":           0.90,
		"credit immobilier":        0.95,
		"salle sport":              0.80,
		"courses supermarche":      -0.90,
		"retrait especes":          -0.85,
		"retrait dab":              -0.85,
		"station service":          -0.80,
		"uber eats":                -0.85,
		"fast food":                -0.80,
		"achat cb":                 -0.50,
		"paiement sans contact":    -0.55,
		"drive courses":            -0.80,
	}
}
