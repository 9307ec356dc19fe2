// The everyday program is a console menu to keep a list of everyday tasks.
//
// Tasks are read from tasks.txt in the working directory at startup and written back when choosing "Save to
// file" and on exit (choice 0, or the end of the input). Choose a menu entry by typing its number; tasks are
// referred to by the number shown next to them in the list, which changes when an earlier task is deleted.
//
// The task file can be set with -f, the EVERYDAY_FILE environment variable (possibly set in a .env file), or the
// file key of everyday.toml; the same goes for log_level and log_file. With --basic only the first six entries
// of the menu are offered.
//
// The file has one task per line, a flag (1 completed, 0 not), a tab, and the title. It can be edited by hand
// while the program isn't running.
package main // import "github.com/nicolagi/everyday/cmd/everyday"
