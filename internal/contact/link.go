// Package contact builds the pre-filled WhatsApp quote link.
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultTemplate is the quote request message; %s receives the formatted bill.
const DefaultTemplate = "Olá! Fiz a simulação no site e gostaria de um orçamento. Minha conta de luz é de aproximadamente R$ %s/mês."

const whatsappBase = "https://wa.me/"

// Message renders template with the input value. A template without a %s
// verb gets the value appended.
func Message(template, value string) string {
	if !strings.Contains(template, "%s") {
		return template + " " + value
	}
	return strings.Replace(template, "%s", value, 1)
}

// Link returns the WhatsApp deep link that opens a chat with phone and the
// message pre-filled.
func Link(phone, message string) string {
	return whatsappBase + digitsOnly(phone) + "?text=" + EncodeComponent(message)
}

// EncodeComponent percent-encodes s for use as a single URL component,
// encoding spaces as %20 rather than '+'.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Copy places link on the system clipboard. It fails when no clipboard
// utility is available; callers treat that as non-fatal.
func Copy(link string) error {
	if clipboard.Unsupported {
		return errors.New("copying link: clipboard unsupported on this system")
	}
	if err := clipboard.WriteAll(link); err != nil {
		return fmt.Errorf("copying link: %w", err)
	}
	return nil
}
