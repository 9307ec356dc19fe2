package everyday

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	flagCompleted   = "1"
	flagUncompleted = "0"
)

// Save writes the tasks to the named file, one per line, creating or truncating it. The format is the flag (1
// completed, 0 otherwise), a tab, and the title as is, without escaping. The write is not atomic.
func Save(pathname string, tasks []Task) error {
	f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, t := range tasks {
		flag := flagUncompleted
		if t.Completed() {
			flag = flagCompleted
		}
		_, _ = w.WriteString(flag)
		_ = w.WriteByte('\t')
		_, _ = w.WriteString(t.Title())
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("save, write: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save, close: %w", err)
	}
	return nil
}

// Load reads the tasks from the named file. Empty lines are skipped. Each other line is split at the first tab:
// the task is completed only if the part before is exactly "1", and the rest of the line is the title, further
// tabs included. A line with no tab is an uncompleted task titled with the whole line.
//
// Load does not fail. If the file does not exist or can't be read, the result is empty (the cause is logged).
// If reading stops halfway, the result holds the tasks read up to that point.
func Load(pathname string) []Task {
	logEntry := log.WithFields(log.Fields{
		"op":   "load",
		"path": pathname,
	})
	f, err := os.Open(pathname)
	if os.IsNotExist(err) {
		logEntry.Debug("No task file yet")
		return nil
	}
	if err != nil {
		logEntry.WithField("cause", err).Warning("Could not open task file")
		return nil
	}
	defer func() {
		if err := f.Close(); err != nil {
			logEntry.WithField("cause", err).Warning("Could not close task file")
		}
	}()
	tasks, err := readTasks(bufio.NewReader(f))
	if err != nil {
		logEntry.WithFields(log.Fields{
			"cause": err,
			"read":  len(tasks),
		}).Warning("Could not read the whole task file")
	}
	return tasks
}

func readTasks(r *bufio.Reader) ([]Task, error) {
	var tasks []Task
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		if line != "" {
			tasks = append(tasks, parseLine(line))
		}
		if err == io.EOF {
			return tasks, nil
		}
		if err != nil {
			return tasks, err
		}
	}
}

func parseLine(line string) Task {
	i := strings.IndexByte(line, '\t')
	if i < 0 {
		return NewTask(line, false)
	}
	return NewTask(line[i+1:], line[:i] == flagCompleted)
}
