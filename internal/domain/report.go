package domain

// ReportMeta summarizes a stored report
type ReportMeta struct {
	TotalProjects      int    `json:"total_projects"`
	ProjectsWithJest   int    `json:"projects_with_jest"`
	ScaffoldedProjects int    `json:"scaffolded_projects"`
	Platform           string `json:"platform"`
	Timestamp          string `json:"timestamp"`
}

// Report is the file format written by --output
type Report struct {
	Meta        ReportMeta   `json:"meta"`
	Resolutions []Resolution `json:"resolutions"`
}
