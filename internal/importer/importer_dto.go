package importer

type ImportResultResponse struct {
	BatchID         string `json:"batchId"`
	FileName        string `json:"fileName"`
	ImportedRecords int    `json:"importedRecords"`
	SkippedRows     int    `json:"skippedRows"`
	MalformedMonths int    `json:"malformedMonths"`
}
