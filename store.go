package everyday

import (
	"io/ioutil"

	log "github.com/sirupsen/logrus"
)

type storeOption func(*Store)

// WithLogger is a store option to trace every successful mutation, at debug level, through the given entry. By
// default the store logs to a discarding logger.
func WithLogger(entry *log.Entry) storeOption {
	return func(s *Store) {
		s.log = entry
	}
}

// Stats summarizes the contents of a store. Deleted counts the removals since the store was created, so it
// survives SetTasks but not the process.
type Stats struct {
	Total   int
	Done    int
	NotDone int
	Deleted int
}

// Store is the ordered list of tasks. A task is addressed by its position. It is not safe for concurrent use;
// the intended owner is a single interactive session.
type Store struct {
	tasks []Task

	// Number of successful calls to Remove. Never reset.
	deleted int

	log *log.Entry
}

// NewStore creates an empty store.
func NewStore(opts ...storeOption) *Store {
	quiet := log.New()
	quiet.Out = ioutil.Discard
	s := &Store{
		log: log.NewEntry(quiet),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends an uncompleted task with the given title.
func (s *Store) Add(title string) {
	s.tasks = append(s.tasks, NewTask(title, false))
	s.log.WithFields(log.Fields{
		"op":    "add",
		"index": len(s.tasks) - 1,
	}).Debug("Task added")
}

// SetTasks replaces the whole list, e.g., with the tasks read by Load. The store keeps its own copy.
func (s *Store) SetTasks(tasks []Task) {
	s.tasks = append([]Task(nil), tasks...)
	s.log.WithFields(log.Fields{
		"op":    "set",
		"count": len(s.tasks),
	}).Debug("Tasks replaced")
}

// Remove deletes the task at the given position, shifting the following ones down by one. It returns false,
// and leaves the store untouched, if the position is out of range.
func (s *Store) Remove(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.deleted++
	s.log.WithFields(log.Fields{
		"op":    "remove",
		"index": index,
	}).Debug("Task removed")
	return true
}

// Edit replaces the title of the task at the given position, keeping its completion flag.
func (s *Store) Edit(index int, title string) bool {
	if !s.valid(index) {
		return false
	}
	s.tasks[index].SetTitle(title)
	s.log.WithFields(log.Fields{
		"op":    "edit",
		"index": index,
	}).Debug("Task edited")
	return true
}

// ToggleCompleted flips the completion flag of the task at the given position.
func (s *Store) ToggleCompleted(index int) bool {
	if !s.valid(index) {
		return false
	}
	t := &s.tasks[index]
	t.SetCompleted(!t.Completed())
	s.log.WithFields(log.Fields{
		"op":        "toggle",
		"index":     index,
		"completed": t.Completed(),
	}).Debug("Task toggled")
	return true
}

// Tasks returns a copy of the list, in order.
func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

// Task looks up the task at the given position.
func (s *Store) Task(index int) (Task, bool) {
	if !s.valid(index) {
		return Task{}, false
	}
	return s.tasks[index], true
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Empty() bool {
	return len(s.tasks) == 0
}

// Stats computes the summary in a single pass over the list.
func (s *Store) Stats() Stats {
	st := Stats{
		Total:   len(s.tasks),
		Deleted: s.deleted,
	}
	for _, t := range s.tasks {
		if t.Completed() {
			st.Done++
		}
	}
	st.NotDone = st.Total - st.Done
	return st
}

func (s *Store) valid(index int) bool {
	return index >= 0 && index < len(s.tasks)
}
