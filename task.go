package everyday

// Task is a single entry of the list: a title and whether it has been completed. The zero value is an
// uncompleted task with an empty title. A task does not validate its title; rejecting empty titles is up to the
// caller.
type Task struct {
	title     string
	completed bool
}

func NewTask(title string, completed bool) Task {
	return Task{title: title, completed: completed}
}

func (t Task) Title() string {
	return t.title
}

func (t Task) Completed() bool {
	return t.completed
}

func (t *Task) SetTitle(value string) {
	t.title = value
}

func (t *Task) SetCompleted(value bool) {
	t.completed = value
}
