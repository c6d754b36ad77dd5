package model

// Todo is a single task tracked by the todo API.
// The JSON names are the wire format; gorm and db tags map the todos table.
// tid is a plain INTEGER PRIMARY KEY, the SQLite rowid: a new id is one past
// the largest in use.
type Todo struct {
	TID    int64  `json:"tid" gorm:"column:tid;primaryKey;type:integer" db:"tid"`
	Task   string `json:"task" gorm:"column:task;not null" db:"task"`
	Status bool   `json:"status" gorm:"column:status;not null;default:false" db:"status"`
}

// TableName pins the gorm table name.
func (Todo) TableName() string { return "todos" }

// Stats counts done and pending todos.
func Stats(items []Todo) (done, pending int) {
	for _, it := range items {
		if it.Status {
			done++
		} else {
			pending++
		}
	}
	return
}
