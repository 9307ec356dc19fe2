package everyday

import "strings"

type taskPredicate func(Task) bool

func negate(p taskPredicate) taskPredicate {
	return func(t Task) bool {
		return !p(t)
	}
}

// TaskScan finds tasks matching all of its predicates. Results are positions in the store, in ascending order.
type TaskScan struct {
	store      *Store
	predicates []taskPredicate
}

// Not negates the last predicate added.  It will panic if no predicates were added.
func (s *TaskScan) Not() *TaskScan {
	i := len(s.predicates) - 1
	s.predicates[i] = negate(s.predicates[i])
	return s
}

func (s *TaskScan) WithCompleted(value bool) *TaskScan {
	s.predicates = append(s.predicates, func(t Task) bool {
		return t.Completed() == value
	})
	return s
}

// WithTitle looks for tasks whose title contains the given substring, case-sensitive.
func (s *TaskScan) WithTitle(needle string) *TaskScan {
	s.predicates = append(s.predicates, func(t Task) bool {
		return strings.Contains(t.Title(), needle)
	})
	return s
}

func (s *TaskScan) Indices() []int {
	var results []int
	for i, t := range s.store.tasks {
		if s.match(t) {
			results = append(results, i)
		}
	}
	return results
}

func (s *TaskScan) match(t Task) bool {
	for _, match := range s.predicates {
		if !match(t) {
			return false
		}
	}
	return true
}

func (s *Store) SearchTasks() *TaskScan {
	return &TaskScan{
		store: s,
	}
}

// FindByKeyword returns the positions of the tasks whose title contains keyword. An empty keyword matches
// nothing.
func (s *Store) FindByKeyword(keyword string) []int {
	if keyword == "" {
		return nil
	}
	return s.SearchTasks().WithTitle(keyword).Indices()
}

// NotCompletedIndices returns the positions of the tasks still to be done.
func (s *Store) NotCompletedIndices() []int {
	return s.SearchTasks().WithCompleted(false).Indices()
}
