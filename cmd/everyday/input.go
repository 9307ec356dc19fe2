package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// console reads answers line by line and writes prompts.
type console struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewReader(in), out: out}
}

func (c *console) write(text string) {
	_, _ = fmt.Fprint(c.out, text)
}

// readLine returns the next line without its line terminator. A last line lacking the newline is returned
// without error; the call after that returns io.EOF.
func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

// readInt keeps asking until the answer is a number.
func (c *console) readInt() (int, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return n, nil
		}
		c.write("Enter a number: ")
	}
}

// readText asks for a line that isn't blank. The boolean is false, after telling the user with the rejection
// message, if the answer was blank.
func (c *console) readText(question, rejection string) (string, bool, error) {
	c.write(question)
	line, err := c.readLine()
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(line) == "" {
		c.write(rejection + "\n")
		return "", false, nil
	}
	return line, true, nil
}

// readIndex asks for a 1-based task number in [1, n] and returns it 0-based. The boolean is false, after telling
// the user why, if the list is empty or the number is out of range.
func (c *console) readIndex(n int) (int, bool, error) {
	if n == 0 {
		c.write("The list is empty.\n")
		return 0, false, nil
	}
	c.write(fmt.Sprintf("Enter task number (1-%d): ", n))
	number, err := c.readInt()
	if err != nil {
		return 0, false, err
	}
	if number < 1 || number > n {
		c.write("Invalid number.\n")
		return 0, false, nil
	}
	return number - 1, true, nil
}

func (c *console) waitForEnter() error {
	c.write("\nPress Enter to continue...")
	_, err := c.readLine()
	return err
}
