package notify

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// SymbolSet holds the status markers used in console output.
type SymbolSet struct {
	Success string
	Error   string
	Warning string
	Info    string
	Drive   string
	Bullet  string
}

// UnicodeSymbols is used on terminals that render UTF-8.
var UnicodeSymbols = SymbolSet{
	Success: "✓",
	Error:   "✗",
	Warning: "⚠️",
	Info:    "•",
	Drive:   "💾",
	Bullet:  "•",
}

// ASCIISymbols is the fallback for dumb terminals and non-UTF-8 sessions.
var ASCIISymbols = SymbolSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Drive:   "[HD]",
	Bullet:  "*",
}

// CurrentSymbols holds the active symbol set based on terminal capabilities
var CurrentSymbols = detectSymbolSet()

func detectSymbolSet() SymbolSet {
	if v := os.Getenv("GESTUREBACKUP_ASCII"); v == "1" || v == "true" {
		return ASCIISymbols
	}

	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return ASCIISymbols
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCIISymbols
	}

	// SSH sessions without a UTF-8 locale garble multi-byte symbols
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" {
		locale := strings.ToLower(os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCIISymbols
		}
	}

	return UnicodeSymbols
}

// ForceASCII switches to ASCII symbols regardless of terminal detection
func ForceASCII() {
	CurrentSymbols = ASCIISymbols
}
