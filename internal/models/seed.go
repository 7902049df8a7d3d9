package models

// SeedRecords returns the sample set installed on an empty first run,
// so the dashboard never starts blank.
func SeedRecords() []InsightRecord {
	return []InsightRecord{
		{
			ID: "seed-1", Date: "2023-10-01", Title: "Cyberpunk City Vlog",
			Views: 1200, Reach: 900, Likes: 120, Shares: 15, Saves: 40, Comments: 5,
			RetentionRate: Retention(45), AvgWatchTime: "5s", Source: SourceManual,
		},
		{
			ID: "seed-2", Date: "2023-10-04", Title: "Neon Light Setup",
			Views: 3500, Reach: 2800, Likes: 400, Shares: 80, Saves: 120, Comments: 22,
			RetentionRate: Retention(60), AvgWatchTime: "8s", Source: SourceManual,
		},
		{
			ID: "seed-3", Date: "2023-10-10", Title: "AI Tech Tips #3",
			Views: 8000, Reach: 7200, Likes: 900, Shares: 450, Saves: 600, Comments: 50,
			RetentionRate: Retention(75), AvgWatchTime: "15s", Source: SourceManual,
		},
	}
}
