// Package translate formats user visible text for the MAR assembler in the
// language of the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/marasm/asm github.com/ezrec/marasm/config github.com/ezrec/marasm/file

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("marasm: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the output language from a preference-ordered list of
// BCP 47 tags. An empty list selects en-US.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
