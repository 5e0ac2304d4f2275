package model

// PrizeGrade is one prize tier of a draw. Values are kept as the upstream
// strings; nil means the field was missing or null.
type PrizeGrade struct {
	Type  *string `json:"type"`
	Num   *string `json:"num"`
	Money *string `json:"money"`
}

// DrawRecord represents one double color ball draw from /history/last.
// Code, Date, Red and Blue are always set on a parsed record.
type DrawRecord struct {
	Code string  `json:"code"`
	Date string  `json:"date"`
	Week *string `json:"week"`
	Red  string  `json:"red"`
	Blue string  `json:"blue"`

	Content     *string      `json:"content"`
	PrizeGrades []PrizeGrade `json:"prize_grades"`
	Sales       *string      `json:"sales"`
	PoolMoney   *string      `json:"poolmoney"`
	VideoLink   *string      `json:"video_link"`
	DetailsLink *string      `json:"details_link"`

	CreateTime *string `json:"creat_time"`
	UpdateTime *string `json:"update_time"`
	Disabled   int     `json:"disabled"`
}

// ResponseEnvelope wraps the upstream response. Data is ordered newest first;
// nil means the field was absent or null.
type ResponseEnvelope struct {
	Code  int          `json:"code"`
	Data  []DrawRecord `json:"data"`
	Total *int         `json:"total"`
	Msg   *string      `json:"msg"`
}

// Latest returns the most recent draw, or false when the list is empty.
func (e *ResponseEnvelope) Latest() (DrawRecord, bool) {
	if e == nil || len(e.Data) == 0 {
		return DrawRecord{}, false
	}
	return e.Data[0], true
}
