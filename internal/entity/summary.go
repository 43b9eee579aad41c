package entity

// DailyClicks is the number of clicks on one calendar date (YYYY-MM-DD).
type DailyClicks struct {
	Date  string
	Count int
}

// Breakdown groups clicks under one OS or device label.
// UniqueUsers counts distinct raw user agent strings, not people.
type Breakdown struct {
	Label        string
	UniqueClicks int
	UniqueUsers  int
}

// LinkClicks holds click totals for one link inside a topic summary.
type LinkClicks struct {
	Alias        string
	ShortURL     string
	TotalClicks  int
	UniqueClicks int
}

// ClickStats is the part shared by every summary scope.
type ClickStats struct {
	TotalClicks  int
	UniqueClicks int
	ClicksByDate []DailyClicks
}

// AliasSummary is the analytics of a single link.
type AliasSummary struct {
	ClickStats
	OSType     []Breakdown
	DeviceType []Breakdown
}

// TopicSummary is the analytics of every link under one topic.
type TopicSummary struct {
	ClickStats
	URLs []LinkClicks
}

// AccountSummary is the analytics of every link owned by one account.
type AccountSummary struct {
	TotalURLs int
	ClickStats
	OSType     []Breakdown
	DeviceType []Breakdown
}
