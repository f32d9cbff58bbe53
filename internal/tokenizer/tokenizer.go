// Package tokenizer turns the scanner's lexeme sequence into semantic tokens
// with a finite-state machine. Malformed input never aborts tokenization; it
// degrades to best-effort tokens plus warnings on the configured reporter.
package tokenizer

import (
	"strings"

	"chordr/internal/diag"
	"chordr/internal/meta"
	"chordr/internal/scanner"
	"chordr/internal/source"
	"chordr/internal/token"
)

// Options configures one Tokenize call.
type Options struct {
	// Reporter receives the non-fatal diagnostics. May be nil.
	Reporter diag.Reporter
}

// Tokenize runs the state machine over the file and returns the token
// sequence. All state is local to the call.
func Tokenize(file *source.File, opts Options) []token.Token {
	lexemes := scanner.Scan(file)
	fsm := newFSM(file.ID, opts.Reporter)
	out := make([]token.Token, 0, len(lexemes))

	for i := range lexemes {
		next, transition := fsm.characterize(&lexemes[i])
		if !transition {
			continue
		}
		if tok, ok := fsm.buildToken(); ok {
			out = append(out, tok)
		}
		fsm.setState(next, &lexemes[i])
		if next == modeEOF {
			break
		}
	}
	return out
}

// fsm holds the per-invocation tokenizer state. The header level counter and
// the single-shot header modifier live here, never in package state.
type fsm struct {
	state          mode
	fileID         source.FileID
	buf            strings.Builder
	bufSpan        source.Span
	bufTouched     bool
	enterSpan      source.Span
	headerLevel    uint8
	headerModifier token.Modifier
	reporter       diag.Reporter
}

func newFSM(fileID source.FileID, reporter diag.Reporter) *fsm {
	return &fsm{
		state:    modeBOF,
		fileID:   fileID,
		reporter: reporter,
	}
}

// characterize decides the follow-up state for a lexeme in the current
// state. It returns false when the machine stays in its state (the lexeme
// was consumed as buffer content).
func (f *fsm) characterize(lex *scanner.Lexeme) (mode, bool) {
	switch {
	case f.state.atLineStart():
		return f.characterizeLineStart(lex)
	case f.state == modeChord:
		return f.characterizeChord(lex)
	case f.state == modeHeader:
		return f.characterizeHeader(lex)
	case f.state == modeQuote:
		return f.characterizeQuote(lex)
	case f.state == modeLiteral:
		return f.characterizeLiteral(lex)
	}
	// modeEOF is terminal; Tokenize stops before feeding it more lexemes.
	return modeEOF, false
}

func (f *fsm) characterizeLineStart(lex *scanner.Lexeme) (mode, bool) {
	switch lex.Kind {
	case scanner.HeaderStart:
		f.headerLevel = 1
		return modeHeader, true
	case scanner.Newline:
		return modeNewline, true
	case scanner.ChordStart:
		return modeChord, true
	case scanner.ChordEnd:
		f.warn(diag.TokUnexpectedChordEnd, lex.Span, "']' without an open chord")
		return modeLiteral, true
	case scanner.QuoteStart:
		return modeQuote, true
	case scanner.EOF:
		return modeEOF, true
	default:
		// Colon, ChorusMark, BridgeMark and Literal have no structural
		// meaning at line start.
		f.append(lex)
		return modeLiteral, true
	}
}

func (f *fsm) characterizeChord(lex *scanner.Lexeme) (mode, bool) {
	switch lex.Kind {
	case scanner.HeaderStart:
		// '#' inside a chord is a sharp
		f.append(lex)
		return 0, false
	case scanner.Newline:
		f.warn(diag.TokUnclosedChord, lex.Span, "chord is not closed before the end of the line")
		return modeNewline, true
	case scanner.ChordStart:
		f.append(lex)
		f.warn(diag.TokNestedChord, lex.Span, "'[' inside an open chord")
		return 0, false
	case scanner.ChordEnd:
		return modeLiteral, true
	case scanner.QuoteStart, scanner.Colon, scanner.ChorusMark, scanner.BridgeMark:
		f.append(lex)
		f.warn(diag.TokInvalidChordCharacter, lex.Span, "unexpected "+lex.Text+" inside a chord")
		return 0, false
	case scanner.Literal:
		f.append(lex)
		return 0, false
	case scanner.EOF:
		f.warn(diag.TokUnexpectedEndOfFile, lex.Span, "file ends inside a chord")
		return modeEOF, true
	}
	return 0, false
}

func (f *fsm) characterizeHeader(lex *scanner.Lexeme) (mode, bool) {
	switch lex.Kind {
	case scanner.HeaderStart:
		f.headerLevel++
		return 0, false
	case scanner.Newline:
		return modeNewline, true
	case scanner.ChorusMark:
		if f.headerModifier != token.ModNone {
			// the modifier slot is single-shot; a second mark is text
			f.append(lex)
		} else {
			f.headerModifier = token.ModChorus
		}
		return 0, false
	case scanner.BridgeMark:
		if f.headerModifier != token.ModNone {
			f.append(lex)
		} else {
			f.headerModifier = token.ModBridge
		}
		return 0, false
	case scanner.EOF:
		f.warn(diag.TokUnexpectedEndOfFile, lex.Span, "file ends inside a header line")
		return modeEOF, true
	default:
		f.append(lex)
		return 0, false
	}
}

func (f *fsm) characterizeQuote(lex *scanner.Lexeme) (mode, bool) {
	switch lex.Kind {
	case scanner.Newline:
		return modeNewline, true
	case scanner.EOF:
		f.warn(diag.TokUnexpectedEndOfFile, lex.Span, "file ends inside a quote line")
		return modeEOF, true
	default:
		// a quote consumes everything up to the newline literally
		f.append(lex)
		return 0, false
	}
}

func (f *fsm) characterizeLiteral(lex *scanner.Lexeme) (mode, bool) {
	switch lex.Kind {
	case scanner.Newline:
		return modeNewline, true
	case scanner.HeaderStart:
		f.warn(diag.TokUnexpectedHeaderStart, lex.Span, "'#' is only a header marker at the start of a line")
		f.append(lex)
		return 0, false
	case scanner.ChordStart:
		return modeChord, true
	case scanner.ChordEnd:
		f.warn(diag.TokUnexpectedChordEnd, lex.Span, "']' without an open chord")
		return 0, false
	case scanner.EOF:
		f.warn(diag.TokUnexpectedEndOfFile, lex.Span, "file ends without a trailing newline")
		return modeEOF, true
	default:
		f.append(lex)
		return 0, false
	}
}

// buildToken converts the accumulated buffer of the state being left into a
// token. Leaving BOF, or Literal with an empty buffer, yields nothing.
func (f *fsm) buildToken() (token.Token, bool) {
	switch f.state {
	case modeHeader:
		return f.buildHeadline(), true
	case modeChord:
		text, span := f.consumeBuffer()
		return token.NewChord(text, span), true
	case modeNewline:
		return token.NewNewline(f.enterSpan), true
	case modeQuote:
		text, span := f.consumeBuffer()
		return token.NewQuote(strings.TrimLeft(text, " \t"), span), true
	case modeLiteral:
		return f.buildLiteral()
	}
	return token.Token{}, false
}

func (f *fsm) buildHeadline() token.Token {
	text, span := f.consumeBuffer()
	span = span.Cover(f.enterSpan)
	tok := token.NewHeadline(f.headerLevel, strings.TrimLeft(text, " \t"), f.headerModifier, span)
	f.headerLevel = 0
	f.headerModifier = token.ModNone
	return tok
}

func (f *fsm) buildLiteral() (token.Token, bool) {
	text, span := f.consumeBuffer()
	if text == "" {
		return token.Token{}, false
	}
	if entry, ok := meta.TryParse(text); ok {
		return token.NewMeta(string(entry.Keyword), entry.Content, span), true
	}
	return token.NewLiteral(text, span), true
}

func (f *fsm) setState(next mode, lex *scanner.Lexeme) {
	f.state = next
	f.enterSpan = lex.Span
}

func (f *fsm) append(lex *scanner.Lexeme) {
	if !f.bufTouched {
		f.bufSpan = lex.Span
		f.bufTouched = true
	} else {
		f.bufSpan = f.bufSpan.Cover(lex.Span)
	}
	f.buf.WriteString(lex.Text)
}

func (f *fsm) consumeBuffer() (string, source.Span) {
	text := f.buf.String()
	span := f.bufSpan
	if !f.bufTouched {
		span = source.Span{File: f.fileID, Start: f.enterSpan.End, End: f.enterSpan.End}
	}
	f.buf.Reset()
	f.bufSpan = source.Span{}
	f.bufTouched = false
	return text, span
}

func (f *fsm) warn(code diag.Code, span source.Span, msg string) {
	diag.ReportWarning(f.reporter, code, span, msg)
}
