package models

// StarSchema holds the finished dimension and fact tables of one run, in the
// order they were built. The load phase exports them in this order.
type StarSchema struct {
	Tables []*Table
}

func NewStarSchema() *StarSchema {
	return &StarSchema{}
}

// Add appends a finished table under its output name.
func (s *StarSchema) Add(t *Table) {
	if t != nil {
		s.Tables = append(s.Tables, t)
	}
}

// Get returns the table with the given output name, or nil.
func (s *StarSchema) Get(name string) *Table {
	for _, t := range s.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}
