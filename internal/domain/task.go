package domain

// TaskStatus is the remote API's status enum. The API is the source of truth;
// this front-end only selects between the known values.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// Display returns the human-readable form used in templates.
func (s TaskStatus) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// StatusOption feeds form select dropdowns.
type StatusOption struct {
	Value TaskStatus
	Text  string
}

var StatusOptions = []StatusOption{
	{Value: StatusPending, Text: "Pending"},
	{Value: StatusInProgress, Text: "In Progress"},
	{Value: StatusCompleted, Text: "Completed"},
}

// Task mirrors the remote API's task resource. Date fields stay as the API's
// ISO strings end to end; formatting for display happens in the handlers.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// PageMeta is the server-owned pagination envelope; this side only reads it.
type PageMeta struct {
	Size          int `json:"size"`
	Number        int `json:"number"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

type PageResponse[T any] struct {
	Content []T      `json:"content"`
	Page    PageMeta `json:"page"`
}

// TaskSearchParams is built per request from query-string input, never stored.
type TaskSearchParams struct {
	Page        int
	Size        int
	Search      string
	Status      string
	DueDateFrom string
	DueDateTo   string
}

// TaskRequest is the create/update payload. Description is a pointer so an
// empty form field serialises as JSON null, matching what the API expects.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     string     `json:"dueDate"`
	Status      TaskStatus `json:"status"`
}
