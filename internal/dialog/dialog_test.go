package dialog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ssoma/internal/dialog"
)

func TestConsole_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"sí\n", true},
		{"  s  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		c := dialog.NewConsole(strings.NewReader(tt.input), &out)
		assert.Equal(t, tt.want, c.Confirm("¿Eliminar empresa?"), "input %q", tt.input)
		assert.Equal(t, "¿Eliminar empresa? [y/N] ", out.String())
	}
}

func TestConsole_ShowWaitsForLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\ny\n")
	c := dialog.NewConsole(in, &out)

	c.Show("Empresa creada exitosamente")
	// Show consumed only the first line, so the next answer is still queued.
	assert.True(t, c.Confirm("continue?"))
	assert.Contains(t, out.String(), "Empresa creada exitosamente\n")
}

func TestConsole_ShowOnEOFReturns(t *testing.T) {
	var out bytes.Buffer
	dialog.NewConsole(strings.NewReader(""), &out).Show("bye")
	assert.Contains(t, out.String(), "bye")
}

func TestNotice(t *testing.T) {
	var out bytes.Buffer
	n := dialog.Notice{Out: &out}
	n.Show("hello")
	assert.False(t, n.Confirm("delete?"))

	n.Answer = true
	assert.True(t, n.Confirm("delete?"))
	assert.Equal(t, "hello\ndelete? [y/N] no (non-interactive)\ndelete? [y/N] yes (non-interactive)\n", out.String())
}

func TestScripted(t *testing.T) {
	s := &dialog.Scripted{Answers: []bool{true}}
	s.Show("a")
	assert.True(t, s.Confirm("first"))
	assert.False(t, s.Confirm("second"))
	assert.Equal(t, []string{"a"}, s.Shown)
	assert.Equal(t, []string{"first", "second"}, s.Confirmed)
}
