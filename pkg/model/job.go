package model

type JobScrapeQuery struct {
	URL string `form:"url" binding:"notblank"`
}

// JobScrapeResult is returned for every scrape, including failed ones.
// Company and Location are only filled by structured extraction.
type JobScrapeResult struct {
	Title    *string `json:"title,omitempty"`
	Company  *string `json:"company,omitempty"`
	Location *string `json:"location,omitempty"`
	JD       string  `json:"jd"`
}

// EmptyJobScrape is the result for pages that could not be fetched.
func EmptyJobScrape() *JobScrapeResult {
	return &JobScrapeResult{JD: ""}
}
