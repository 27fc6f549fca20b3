package inventory

// FeedItem is one room advertised by the upstream inventory feed. Amount is a
// decimal string such as "150.00".
type FeedItem struct {
	Hotel    string `json:"hotel"`
	Room     int    `json:"room"`
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// FeedResponse models the top-level structure of one feed page.
type FeedResponse struct {
	Code int `json:"code"`
	Data struct {
		Page     int        `json:"page"`
		PageSize int        `json:"pageSize"`
		Total    int        `json:"total"`
		Items    []FeedItem `json:"items"`
	} `json:"data"`
}
