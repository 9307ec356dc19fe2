// The everyday package keeps a personal list of short tasks in memory and persists it to a flat text file. At
// the time of writing the only consumer is the console program in the cmd/everyday subdirectory.
//
// A Store holds the tasks in order. Tasks have no identifiers: they are addressed by their position in the
// store (0-based here, the console program shows them 1-based), so positions shift after a removal. All lookup
// and search operations scan through the list. This is fine as a personal task list is small.
//
// Methods that modify the store, e.g., Remove or Edit, validate the position first and report with a boolean
// whether anything changed. The store also counts the removals that happened since it was created; that counter
// is not part of the file and starts over with every process.
//
// Save and Load convert between a slice of tasks and the file format, one task per line: a flag (1 for
// completed, 0 otherwise), a tab, and the title verbatim. Titles are not escaped.
package everyday // import "github.com/nicolagi/everyday"
