package dto

// Report описывает один прогон демонстрации: список до и после добавления элементов
type Report struct {
	Before string `json:"before"`
	After  string `json:"after"`
	Values []int  `json:"values"`
	Length int    `json:"length"`
}

func NewReport() *Report {
	return &Report{Values: []int{}}
}
