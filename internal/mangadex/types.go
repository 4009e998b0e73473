package mangadex

// Object is a top level MangaDex entity. Unlike relationship payloads, its
// attributes are required to decode.
type Object[T Attributes] struct {
	ID            string        `json:"id"`
	Type          ObjectType    `json:"type"`
	Attributes    T             `json:"attributes"`
	Relationships Relationships `json:"relationships"`
}

type Manga = Object[MangaAttributes]
type Chapter = Object[ChapterAttributes]

// Entity is the envelope around a single object.
type Entity[T Attributes] struct {
	Result   string    `json:"result"`
	Response string    `json:"response"`
	Data     Object[T] `json:"data"`
}

// EntityList is one page of objects.
type EntityList[T Attributes] struct {
	Result   string      `json:"result"`
	Response string      `json:"response"`
	Data     []Object[T] `json:"data"`
	Limit    int         `json:"limit"`
	Offset   int         `json:"offset"`
	Total    int         `json:"total"`
}

type Statistics struct {
	Comments *CommentStatistics `json:"comments"`
	Rating   *RatingStatistics  `json:"rating"`
	Follows  int                `json:"follows"`
}

type CommentStatistics struct {
	ThreadID     int `json:"threadId"`
	RepliesCount int `json:"repliesCount"`
}

// RatingStatistics holds the score distribution keyed "1" to "10".
type RatingStatistics struct {
	Average      *float64       `json:"average"`
	Bayesian     float64        `json:"bayesian"`
	Distribution map[string]int `json:"distribution"`
}

type statisticsResponse struct {
	Result     string                `json:"result"`
	Statistics map[string]Statistics `json:"statistics"`
}
