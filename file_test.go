package everyday_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/nicolagi/everyday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	pathname := filepath.Join(t.TempDir(), "tasks.txt")
	require.Nil(t, ioutil.WriteFile(pathname, []byte(contents), 0644))
	return pathname
}

func TestSaveFormat(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "tasks.txt")
	err := everyday.Save(pathname, []everyday.Task{
		everyday.NewTask("Buy milk", false),
		everyday.NewTask("Write report", true),
		everyday.NewTask("", false),
	})
	require.Nil(t, err)
	b, err := ioutil.ReadFile(pathname)
	require.Nil(t, err)
	assert.Equal(t, "0\tBuy milk\n1\tWrite report\n0\t\n", string(b))
}

func TestSaveTruncates(t *testing.T) {
	pathname := writeFile(t, "0\ta\n0\tb\n0\tc\n")
	require.Nil(t, everyday.Save(pathname, []everyday.Task{everyday.NewTask("only", true)}))
	b, err := ioutil.ReadFile(pathname)
	require.Nil(t, err)
	assert.Equal(t, "1\tonly\n", string(b))
}

func TestSaveEmpty(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "tasks.txt")
	require.Nil(t, everyday.Save(pathname, nil))
	b, err := ioutil.ReadFile(pathname)
	require.Nil(t, err)
	assert.Empty(t, b)
}

func TestSaveError(t *testing.T) {
	dir := t.TempDir()
	assert.NotNil(t, everyday.Save(dir, nil))
	assert.NotNil(t, everyday.Save(filepath.Join(dir, "missing", "tasks.txt"), nil))
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		expected []everyday.Task
	}{
		{
			name:     "empty file",
			contents: "",
			expected: nil,
		},
		{
			name:     "flags",
			contents: "0\tBuy milk\n1\tWrite report\n",
			expected: []everyday.Task{
				everyday.NewTask("Buy milk", false),
				everyday.NewTask("Write report", true),
			},
		},
		{
			name:     "blank line skipped",
			contents: "0\tfirst\n\n1\tsecond\n",
			expected: []everyday.Task{
				everyday.NewTask("first", false),
				everyday.NewTask("second", true),
			},
		},
		{
			name:     "no trailing newline",
			contents: "1\tlast",
			expected: []everyday.Task{everyday.NewTask("last", true)},
		},
		{
			name:     "no tab",
			contents: "just a title\n",
			expected: []everyday.Task{everyday.NewTask("just a title", false)},
		},
		{
			name:     "unknown flags",
			contents: "11\ta\nx\tb\n\tc\n 1\td\n",
			expected: []everyday.Task{
				everyday.NewTask("a", false),
				everyday.NewTask("b", false),
				everyday.NewTask("c", false),
				everyday.NewTask("d", false),
			},
		},
		{
			name:     "split at first tab",
			contents: "1\tcolumn\tseparated\t\n",
			expected: []everyday.Task{everyday.NewTask("column\tseparated\t", true)},
		},
		{
			name:     "title kept verbatim",
			contents: "0\t  padded  \r\n",
			expected: []everyday.Task{everyday.NewTask("  padded  \r", false)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, everyday.Load(writeFile(t, tc.contents)))
		})
	}
}

func TestLoadMissingOrUnreadable(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, everyday.Load(filepath.Join(dir, "missing.txt")))
	assert.Empty(t, everyday.Load(dir))
}

func TestRoundTrip(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "tasks.txt")
	tasks := []everyday.Task{
		everyday.NewTask("one", true),
		everyday.NewTask("two", false),
		everyday.NewTask("with\ttab", true),
		everyday.NewTask("three", false),
	}
	require.Nil(t, everyday.Save(pathname, tasks))
	assert.Equal(t, tasks, everyday.Load(pathname))
}

func TestRoundTripNewlineInTitle(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "tasks.txt")
	require.Nil(t, everyday.Save(pathname, []everyday.Task{everyday.NewTask("two\nlines", true)}))
	assert.Equal(t, []everyday.Task{
		everyday.NewTask("two", true),
		everyday.NewTask("lines", false),
	}, everyday.Load(pathname))
}

func TestSaveLoadScenario(t *testing.T) {
	s := everyday.NewStore()
	s.Add("Buy milk")
	s.Add("Write report")
	require.True(t, s.ToggleCompleted(1))

	pathname := filepath.Join(t.TempDir(), "out.txt")
	require.Nil(t, everyday.Save(pathname, s.Tasks()))

	loaded := everyday.NewStore()
	loaded.SetTasks(everyday.Load(pathname))
	assert.Equal(t, []everyday.Task{
		everyday.NewTask("Buy milk", false),
		everyday.NewTask("Write report", true),
	}, loaded.Tasks())
	assert.Equal(t, 0, loaded.Stats().Deleted)
}
