package dto

// UploadResult is the outcome for one file of a batch. A failed file
// keeps its slot with an empty URL so file order is preserved and the
// admin can paste an external URL instead.
type UploadResult struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Error    string `json:"error,omitempty"`
}

// UploadBatchResponse reports the settled state of one upload batch.
type UploadBatchResponse struct {
	Results  []UploadResult `json:"results"`
	URLs     []string       `json:"urls"` // one slot per accepted file, in file order
	Uploaded int            `json:"uploaded"`
	Failed   int            `json:"failed"`
	Dropped  int            `json:"dropped,omitempty"` // files beyond the batch cap
	Notice   string         `json:"notice,omitempty"`
}
