package structs

type ActivityLogJsonModel struct {
	Type        string         `json:"type"`
	PatientID   string         `json:"patient_id,omitempty"`
	PatientName string         `json:"patient_name,omitempty"`
	Result      bool           `json:"result"`
	Statistic   StatisticModel `json:"statistic"`
	Message     string         `json:"message"`
	Messages    []ErrorModel   `json:"messages"`
}

type StatisticModel struct {
	TotalRows    int `json:"total_rows"`
	SkippedRows  int `json:"skipped_rows"`
	ImportedRows int `json:"imported_rows"`
	TotalPatient int `json:"total_patient"`
}
