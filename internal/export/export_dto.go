package export

type ExportRequest struct {
	Mode       string `form:"mode"`
	Columns    string `form:"columns"` // comma-separated field keys; empty means all
	Department string `form:"department"`
	Year       string `form:"year"`
	Month      string `form:"month"`
	Search     string `form:"search"`
}

// ExportFile is a fully built workbook ready to stream as an attachment.
type ExportFile struct {
	FileName string
	Content  []byte
}
