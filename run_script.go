package shaper

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
)

// scriptRuns iterates maximal runs of a single script.
//
// Characters of script Common or Inherited never start a run boundary:
// they take on the script of the surrounding run, so punctuation, digits
// and combining marks stay attached to the text around them. A run whose
// every character is Common or Inherited reports Common.
type scriptRuns struct {
	text   string
	pos    int // byte offset one past the current run
	script language.Script
}

func newScriptRuns(text string) *scriptRuns {
	return &scriptRuns{text: text}
}

// consume implements runIterator.
func (it *scriptRuns) consume() {
	if it.atEnd() {
		panic("shaper: scriptRuns.consume called at end")
	}
	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	it.pos += size
	it.script = language.LookupScript(r)
	for it.pos < len(it.text) {
		prev := it.pos
		r, size = utf8.DecodeRuneInString(it.text[it.pos:])
		it.pos += size
		script := language.LookupScript(r)
		if script == it.script {
			continue
		}
		if it.script == language.Inherited || it.script == language.Common {
			// The run had no real script yet; adopt this one.
			it.script = script
		} else if script == language.Inherited || script == language.Common {
			continue
		} else {
			it.pos = prev
			break
		}
	}
	if it.script == language.Inherited {
		it.script = language.Common
	}
}

// end implements runIterator.
func (it *scriptRuns) end() int { return it.pos }

// atEnd implements runIterator.
func (it *scriptRuns) atEnd() bool { return it.pos == len(it.text) }

// currentScript returns the script of the current run.
func (it *scriptRuns) currentScript() language.Script { return it.script }
