package reddit

// Wire types for Reddit listing responses. Only the fields this package
// reads are declared.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Kind string     `json:"kind"`
			Data submission `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type submission struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	URL               string   `json:"url"`
	Selftext          string   `json:"selftext"`
	Author            string   `json:"author"`
	Subreddit         string   `json:"subreddit"`
	Permalink         string   `json:"permalink"`
	Thumbnail         string   `json:"thumbnail"`
	LinkFlairText     string   `json:"link_flair_text"`
	CreatedUTC        float64  `json:"created_utc"`
	Score             int64    `json:"score"`
	NumComments       int64    `json:"num_comments"`
	UpvoteRatio       float64  `json:"upvote_ratio"`
	IsSelf            bool     `json:"is_self"`
	IsVideo           bool     `json:"is_video"`
	RemovedByCategory string   `json:"removed_by_category"`
	Preview           *preview `json:"preview"`
}

type preview struct {
	Images []struct {
		Source struct {
			URL string `json:"url"`
		} `json:"source"`
	} `json:"images"`
}
