package news

// Fixture returns the static article set used in place of a live data
// source. The category filter option list is derived from this set, in
// first-occurrence order. A fresh copy is returned on every call so
// callers can never mutate the canonical data.
func Fixture() []Article {
	return []Article{
		{
			ID:          1,
			Title:       "AI Breakthrough Helps Doctors Spot Diseases Months Earlier",
			Summary:     "A new deep learning system trained on millions of medical scans can flag early signs of disease well before symptoms appear, researchers announced this week.",
			Category:    "Technology",
			Sentiment:   SentimentPositive,
			Score:       0.92,
			Source:      "Tech Chronicle",
			URL:         "#",
			PublishedAt: "2 hours ago",
		},
		{
			ID:          2,
			Title:       "Global Markets Hold Steady as Investors Weigh Rate Outlook",
			Summary:     "Stock indexes closed mostly flat on Tuesday while traders looked for clues about the timing of the next policy move by the Federal Reserve.",
			Category:    "Business",
			Sentiment:   SentimentNeutral,
			Score:       0.55,
			Source:      "Market Watch",
			URL:         "#",
			PublishedAt: "4 hours ago",
		},
		{
			ID:          3,
			Title:       "Coral Reefs Shrinking Faster Than Expected, Study Finds",
			Summary:     "Record ocean temperatures have wiped out nearly a third of shallow-water coral in the past decade, and scientists warn the losses may be permanent.",
			Category:    "Environment",
			Sentiment:   SentimentNegative,
			Score:       0.78,
			Source:      "World Environment Report",
			URL:         "#",
			PublishedAt: "6 hours ago",
		},
		{
			ID:          4,
			Title:       "New Vaccine Shows Strong Results in Late-Stage Trials",
			Summary:     "Researchers reported a 94 percent drop in severe infections among volunteers who received the two-dose shot, clearing the way for regulatory review.",
			Category:    "Health",
			Sentiment:   SentimentPositive,
			Score:       0.88,
			Source:      "Health Journal",
			URL:         "#",
			PublishedAt: "8 hours ago",
		},
		{
			ID:          5,
			Title:       "Underdogs Clinch Championship Title in Overtime Thriller",
			Summary:     "A last-minute goal sealed a comeback victory that ended a twelve-year title drought and set off celebrations across the city.",
			Category:    "Sports",
			Sentiment:   SentimentPositive,
			Score:       0.85,
			Source:      "Sports Network",
			URL:         "#",
			PublishedAt: "12 hours ago",
		},
		{
			ID:          6,
			Title:       "Lawmakers Debate Budget Proposal Ahead of Year-End Deadline",
			Summary:     "Negotiators from both parties met late into the night to narrow differences over spending levels, with a vote expected before the recess.",
			Category:    "Politics",
			Sentiment:   SentimentNeutral,
			Score:       0.62,
			Source:      "Capitol Report",
			URL:         "#",
			PublishedAt: "1 day ago",
		},
	}
}
