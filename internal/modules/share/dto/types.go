package dto

type CardOutput struct {
	Streak       int
	StreakText   string
	LastDate     string
	HasLast      bool
	LastDateText string
	Theme        string
	Quote        string
	Title        string
	Footer       string
}

type LinkOutput struct {
	URL string
}

type TargetOutput struct {
	Platform string
	Label    string
	URL      string
}

type OpenInput struct {
	Platform string
}

type ExportInput struct {
	Dir string
}

type ExportOutput struct {
	Path  string
	Bytes int
}
