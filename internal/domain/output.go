package domain

import "strings"

var nameReplacer = strings.NewReplacer("/", "-", "\\", "-")

// OutputName returns the deterministic document name for an invoice number,
// e.g. invoice-2019-123.pdf.
func OutputName(number, ext string) string {
	return "invoice-" + nameReplacer.Replace(number) + "." + ext
}

// ExampleConfig is a sample configuration covering every field.
const ExampleConfig = `from: |
  My multiline name
  Here's a second line
client: |
  My multiline client
  Hey ho, second line here
number: 2019-123
notes: |
  If all your data are always the same, just the invoice number changes,
  save the static data in a yml and pass the invoice number on command line
  by using (--number).

  Note that the date always defaults to today, and the due-date to today + 15
items:
  -
    - Nice item for %past_month% %year%
    - 1
    - 12334
  -
    - Other item, for %month%
    - 0.5
    - 100000
currency: GBP
`
