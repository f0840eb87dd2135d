package foscam

import (
	"strings"
	"testing"
)

func TestHelpTextLayout(t *testing.T) {
	if !strings.HasPrefix(HelpText, "\n        Foscam Controller Help:\n") {
		t.Errorf("HelpText starts with %q", HelpText[:40])
	}

	lines := strings.Split(HelpText, "\n")
	for i, line := range lines[1:] {
		if line != "" && !strings.HasPrefix(line, "        ") {
			t.Errorf("line %d = %q, want 8 space indent", i+1, line)
		}
	}

	if last := lines[len(lines)-1]; last != "        " {
		t.Errorf("last line = %q, want closing indent", last)
	}
}
