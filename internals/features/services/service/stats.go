package service

// AttendanceBreakdown agrega os contadores de presença de um culto.
type AttendanceBreakdown struct {
	AdultsMale     int `json:"adults_male"`
	AdultsFemale   int `json:"adults_female"`
	ChildrenMale   int `json:"children_male"`
	ChildrenFemale int `json:"children_female"`
	VisitorsMale   int `json:"visitors_male"`
	VisitorsFemale int `json:"visitors_female"`
}

func (b AttendanceBreakdown) Adults() int {
	return b.AdultsMale + b.AdultsFemale
}

func (b AttendanceBreakdown) Children() int {
	return b.ChildrenMale + b.ChildrenFemale
}

func (b AttendanceBreakdown) Visitors() int {
	return b.VisitorsMale + b.VisitorsFemale
}

func (b AttendanceBreakdown) Male() int {
	return b.AdultsMale + b.ChildrenMale + b.VisitorsMale
}

func (b AttendanceBreakdown) Female() int {
	return b.AdultsFemale + b.ChildrenFemale + b.VisitorsFemale
}

func (b AttendanceBreakdown) Total() int {
	return b.Adults() + b.Children() + b.Visitors()
}
