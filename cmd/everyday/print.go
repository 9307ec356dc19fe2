package main

import (
	"fmt"
	"io"

	"github.com/nicolagi/everyday"
)

func printMenu(w io.Writer, basic bool) {
	_, _ = fmt.Fprint(w, "\n~~~ Everyday Tasks ~~~\n")
	last := choiceStats
	if basic {
		last = choiceSave
	}
	for c := choiceAdd; c <= last; c++ {
		_, _ = fmt.Fprintf(w, "%d. %s\n", c, c.label())
	}
	_, _ = fmt.Fprintf(w, "%d. %s\n", choiceExit, choiceExit.label())
	_, _ = fmt.Fprint(w, "Your choice: ")
}

func printTask(w io.Writer, index int, t everyday.Task) {
	box := "[ ]"
	if t.Completed() {
		box = "[x]"
	}
	_, _ = fmt.Fprintf(w, "%d. %s %s\n", index+1, box, t.Title())
}

func printTasks(w io.Writer, tasks []everyday.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprint(w, "The task list is empty.\n")
		return
	}
	for i, t := range tasks {
		printTask(w, i, t)
	}
}

// printTasksAt prints the tasks at the given positions, numbered as in the full list.
func printTasksAt(w io.Writer, tasks []everyday.Task, indices []int, header string) {
	_, _ = fmt.Fprintf(w, "\n%s\n", header)
	if len(indices) == 0 {
		_, _ = fmt.Fprint(w, "Nothing found.\n")
		return
	}
	for _, i := range indices {
		if i < 0 || i >= len(tasks) {
			continue
		}
		printTask(w, i, tasks[i])
	}
}

func printStats(w io.Writer, st everyday.Stats) {
	_, _ = fmt.Fprint(w, "\nStatistics:\n")
	_, _ = fmt.Fprintf(w, "Total: %d\n", st.Total)
	_, _ = fmt.Fprintf(w, "Completed: %d\n", st.Done)
	_, _ = fmt.Fprintf(w, "Not completed: %d\n", st.NotDone)
	_, _ = fmt.Fprintf(w, "Deleted: %d\n", st.Deleted)
}
