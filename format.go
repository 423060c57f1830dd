package obfint

import (
	"fmt"
	"strconv"

	"golang.org/x/text/message"
)

// String formats the decoded value in base 10.
func (x Int64) String() string {
	return strconv.FormatInt(x.Int64(), 10)
}

// Format implements fmt.Formatter so that every verb, flag, width and
// precision prints exactly as it would for the decoded int64.
func (x Int64) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.Int64())
}

// Sprintf formats the decoded value with a single-operand format string.
func (x Int64) Sprintf(format string) string {
	return fmt.Sprintf(format, x.Int64())
}

// Localize formats the decoded value as a decimal using p's locale,
// e.g. "1,234,567" for English.
func (x Int64) Localize(p *message.Printer) string {
	return p.Sprintf("%d", x.Int64())
}

// LocalizeFormat is Sprintf with p's locale-aware number formatting.
func (x Int64) LocalizeFormat(p *message.Printer, format string) string {
	return p.Sprintf(format, x.Int64())
}
