package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nicolagi/everyday"
	log "github.com/sirupsen/logrus"
)

type menuChoice int

const (
	choiceExit        menuChoice = iota // save and quit
	choiceAdd                           // 1
	choiceList                          // 2
	choiceToggle                        // 3
	choiceEdit                          // 4
	choiceRemove                        // 5
	choiceSave                          // 6, last of the basic variant
	choiceSearch                        // 7
	choiceNotComplete                   // 8
	choiceStats                         // 9
)

func (c menuChoice) String() string {
	switch c {
	case choiceExit:
		return "exit"
	case choiceAdd:
		return "add"
	case choiceList:
		return "list"
	case choiceToggle:
		return "toggle"
	case choiceEdit:
		return "edit"
	case choiceRemove:
		return "remove"
	case choiceSave:
		return "save"
	case choiceSearch:
		return "search"
	case choiceNotComplete:
		return "notCompleted"
	case choiceStats:
		return "stats"
	default:
		return fmt.Sprintf("%d", int(c))
	}
}

// label is the menu text.
func (c menuChoice) label() string {
	switch c {
	case choiceExit:
		return "Exit"
	case choiceAdd:
		return "Add task"
	case choiceList:
		return "List tasks"
	case choiceToggle:
		return "Toggle completed"
	case choiceEdit:
		return "Edit task title"
	case choiceRemove:
		return "Delete task"
	case choiceSave:
		return "Save to file"
	case choiceSearch:
		return "Search tasks by title"
	case choiceNotComplete:
		return "Show not completed only"
	case choiceStats:
		return "Task statistics"
	default:
		return ""
	}
}

// shell is the interactive session. It is the only owner of the store.
type shell struct {
	*console

	store    *everyday.Store
	pathname string
	basic    bool

	log *log.Entry
}

func newShell(cfg *config, c *console, logEntry *log.Entry) *shell {
	return &shell{
		console:  c,
		store:    everyday.NewStore(everyday.WithLogger(logEntry)),
		pathname: cfg.File,
		basic:    cfg.Basic,
		log:      logEntry,
	}
}

// run loads the task file, then serves menu choices until the user exits or the input ends. Either way the
// tasks are saved before returning. The error is only non-nil if reading the input failed for a reason other
// than its end.
func (sh *shell) run() error {
	loaded := everyday.Load(sh.pathname)
	sh.store.SetTasks(loaded)
	if len(loaded) != 0 {
		sh.write(fmt.Sprintf("Loaded tasks from file: %d\n", len(loaded)))
	}
	var err error
	for {
		printMenu(sh.out, sh.basic)
		var n int
		n, err = sh.readInt()
		if err != nil {
			break
		}
		choice := menuChoice(n)
		if choice == choiceExit {
			break
		}
		if err = sh.execute(choice); err != nil {
			break
		}
	}
	if errors.Is(err, io.EOF) {
		sh.log.Debug("End of input, exiting")
		err = nil
	} else if err != nil {
		sh.log.WithField("cause", err).Error("Could not read input")
	}
	if sh.save() {
		sh.write("Goodbye! (list saved)\n")
	} else {
		sh.write("Goodbye!\n")
	}
	return err
}

// execute runs one menu choice other than exit. Errors are input errors, which end the session.
func (sh *shell) execute(choice menuChoice) error {
	sh.log.WithField("choice", choice).Debug("Executing menu choice")
	if sh.basic && choice > choiceSave {
		choice = -1
	}
	switch choice {
	case choiceAdd:
		return sh.add()
	case choiceList:
		printTasks(sh.out, sh.store.Tasks())
		return sh.waitForEnter()
	case choiceToggle:
		return sh.toggle()
	case choiceEdit:
		return sh.edit()
	case choiceRemove:
		return sh.remove()
	case choiceSave:
		if sh.save() {
			sh.write("Saved to file.\n")
		}
		return nil
	case choiceSearch:
		return sh.search()
	case choiceNotComplete:
		return sh.notCompleted()
	case choiceStats:
		printStats(sh.out, sh.store.Stats())
		return sh.waitForEnter()
	default:
		sh.write("Invalid choice.\n")
		return nil
	}
}

func (sh *shell) add() error {
	title, ok, err := sh.readText("Enter task title: ", "Title cannot be empty.")
	if err != nil || !ok {
		return err
	}
	sh.store.Add(title)
	sh.write("Task added.\n")
	return nil
}

// pick lists the tasks and asks for one of them.
func (sh *shell) pick() (int, bool, error) {
	printTasks(sh.out, sh.store.Tasks())
	return sh.readIndex(sh.store.Len())
}

func (sh *shell) toggle() error {
	index, ok, err := sh.pick()
	if err != nil || !ok {
		return err
	}
	sh.store.ToggleCompleted(index)
	sh.write("Status changed.\n")
	return nil
}

func (sh *shell) edit() error {
	index, ok, err := sh.pick()
	if err != nil || !ok {
		return err
	}
	title, ok, err := sh.readText("Enter new title: ", "Title cannot be empty.")
	if err != nil || !ok {
		return err
	}
	sh.store.Edit(index, title)
	sh.write("Task edited.\n")
	return nil
}

func (sh *shell) remove() error {
	index, ok, err := sh.pick()
	if err != nil || !ok {
		return err
	}
	sh.store.Remove(index)
	sh.write("Task deleted.\n")
	return nil
}

func (sh *shell) search() error {
	if sh.store.Empty() {
		sh.write("The list is empty.\n")
		return nil
	}
	keyword, ok, err := sh.readText("Enter a word or part of a title to search for: ", "Empty query.")
	if err != nil || !ok {
		return err
	}
	printTasksAt(sh.out, sh.store.Tasks(), sh.store.FindByKeyword(keyword), "Search results:")
	return sh.waitForEnter()
}

func (sh *shell) notCompleted() error {
	if sh.store.Empty() {
		sh.write("The list is empty.\n")
		return nil
	}
	printTasksAt(sh.out, sh.store.Tasks(), sh.store.NotCompletedIndices(), "Not completed tasks:")
	return sh.waitForEnter()
}

// save writes the file, telling the user if that failed. The tasks stay in memory either way.
func (sh *shell) save() bool {
	if err := everyday.Save(sh.pathname, sh.store.Tasks()); err != nil {
		sh.log.WithFields(log.Fields{
			"path":  sh.pathname,
			"cause": err,
		}).Error("Could not save tasks")
		sh.write("Save failed.\n")
		return false
	}
	return true
}
