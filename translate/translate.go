// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible compiler messages for the
// caller's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hrmc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// lazy is an error whose text is translated each time it is printed.
type lazy struct {
	key string
}

func (err *lazy) Error() string {
	return printer.Sprintf(err.key)
}

// Error creates a sentinel error. Its text follows the current language,
// including one selected by Use after the error was created.
func Error(key string) error {
	return &lazy{key: key}
}

// Use switches the message printer to an explicit language tag,
// overriding the detected locale.
func Use(tag language.Tag) {
	printer = message.NewPrinter(tag)
}
