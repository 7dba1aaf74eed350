package model

// TaskItem is one entry in the locally persisted task list. It shares
// the storage layer with the credential store but is otherwise
// independent of the calendar engine.
type TaskItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}
