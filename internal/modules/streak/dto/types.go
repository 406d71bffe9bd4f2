package dto

type RecordOutput struct {
	Count    int
	LastDate string
	HasLast  bool
	Outcome  string
}

type StatusOutput struct {
	Count     int
	LastDate  string
	HasLast   bool
	Today     string
	DoneToday bool
	Alive     bool
	DaysSince int
}

type RecordInput struct {
	// Day overrides today when set, formatted YYYY-MM-DD.
	Day string
}
