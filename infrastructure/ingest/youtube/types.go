package youtube

// Wire types for the Data API v3 responses. Only the fields this
// package reads are declared.

type searchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type videosResponse struct {
	Items []videoResource `json:"items"`
}

type videoResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelID    string `json:"channelId"`
		ChannelTitle string `json:"channelTitle"`
		CategoryID   string `json:"categoryId"`
		PublishedAt  string `json:"publishedAt"`
		Thumbnails   struct {
			High    thumbnail `json:"high"`
			Medium  thumbnail `json:"medium"`
			Default thumbnail `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type thumbnail struct {
	URL string `json:"url"`
}
