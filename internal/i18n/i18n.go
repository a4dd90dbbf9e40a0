// Package i18n carries the English/Hindi label pairs used by the
// plain-text bill and customer exports.
package i18n

// Lang selects the label language for rendered documents.
type Lang string

const (
	English Lang = "en"
	Hindi   Lang = "hi"
)

// Parse maps a request value to a Lang, defaulting to English.
func Parse(s string) Lang {
	if s == string(Hindi) {
		return Hindi
	}
	return English
}

var labels = map[string][2]string{
	"customer":   {"Customer", "ग्राहक"},
	"date":       {"Date", "तारीख"},
	"items":      {"Items", "सामान"},
	"total":      {"Total", "कुल"},
	"status":     {"Status", "स्थिति"},
	"name":       {"Name", "नाम"},
	"phone":      {"Phone", "फोन"},
	"email":      {"Email", "ईमेल"},
	"address":    {"Address", "पता"},
	"past_bills": {"Past Bills", "पिछले बिल"},
}

// T returns the label for key in l, falling back to the key itself when
// unknown.
func (l Lang) T(key string) string {
	pair, ok := labels[key]
	if !ok {
		return key
	}
	if l == Hindi {
		return pair[1]
	}
	return pair[0]
}
