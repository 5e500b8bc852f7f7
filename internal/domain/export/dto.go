package export

// Identity is the per-row student/company block repeated in every CSV row.
type Identity struct {
	StudentName  string
	StudentEmail string
	CompanyName  string
}

// CSVDocument is a rendered export ready to be streamed to the client.
type CSVDocument struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	RowCount    int    `json:"row_count"`
	Data        []byte `json:"-"`
}

// ArchiveResponse describes a CSV that was persisted to the file sink.
type ArchiveResponse struct {
	Path     string `json:"path"`
	FileName string `json:"file_name"`
	RowCount int    `json:"row_count"`
}
