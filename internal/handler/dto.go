package handler

type ArchiveResponse struct {
	Name      string `json:"name"`
	Articles  int    `json:"articles"`
	SizeBytes int64  `json:"size_bytes"`
}

type ArchiveListResponse struct {
	Archives []ArchiveResponse `json:"archives"`
	Total    int               `json:"total"`
}

type ArticleResponse struct {
	Headline string `json:"headline"`
	Date     string `json:"date"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}
