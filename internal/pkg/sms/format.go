package sms

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidPhoneNumber is returned when a number cannot be canonicalized
// into a valid international format.
var ErrInvalidPhoneNumber = errors.New("invalid phone number format")

var nonDialable = regexp.MustCompile(`[^\d+]`)

// countryRule canonicalizes national-format numbers for one dialing prefix.
type countryRule struct {
	name string
	// localize turns a cleaned national number into international form,
	// returning false when the rule does not apply.
	localize func(cleaned string) (string, bool)
	pattern  *regexp.Regexp
}

// genericPattern accepts any plausible international number.
var genericPattern = regexp.MustCompile(`^\+[0-9]{1,3}[0-9]{7,14}$`)

var countryRules = map[string]countryRule{
	"+234": {
		name: "Nigeria",
		localize: func(cleaned string) (string, bool) {
			// 0XXXXXXXXXX becomes +234XXXXXXXXXX.
			if strings.HasPrefix(cleaned, "0") && len(cleaned) == 11 {
				return "+234" + cleaned[1:], true
			}
			return "", false
		},
		pattern: regexp.MustCompile(`^\+234[0-9]{10}$`),
	},
	"+1": {
		name: "USA/Canada",
		localize: func(cleaned string) (string, bool) {
			if len(cleaned) == 10 {
				return "+1" + cleaned, true
			}
			return "", false
		},
		pattern: regexp.MustCompile(`^\+1[0-9]{10}$`),
	},
	"+44": {
		name:    "UK",
		pattern: regexp.MustCompile(`^\+44[0-9]{10}$`),
	},
	"+91": {
		name:    "India",
		pattern: regexp.MustCompile(`^\+91[0-9]{10}$`),
	},
}

// Formatter canonicalizes raw phone numbers to a single international
// representation used for storage and lookup.
type Formatter struct {
	countryCode string
	rule        countryRule
	pattern     *regexp.Regexp
}

// FormatterConfig configures a Formatter.
type FormatterConfig struct {
	// CountryCode is the default dialing prefix, e.g. "+234".
	CountryCode string
	// PhoneRegex overrides the per-country validation pattern.
	PhoneRegex string
}

// NewFormatter builds a Formatter for the configured country. An invalid
// PhoneRegex override falls back to the per-country default.
func NewFormatter(cfg FormatterConfig) *Formatter {
	code := cfg.CountryCode
	if code == "" {
		code = "+234"
	}

	rule, ok := countryRules[code]
	if !ok {
		rule = countryRule{name: "configured country", pattern: genericPattern}
	}

	pattern := rule.pattern
	if cfg.PhoneRegex != "" {
		if re, err := regexp.Compile(cfg.PhoneRegex); err == nil {
			pattern = re
		}
	}

	return &Formatter{countryCode: code, rule: rule, pattern: pattern}
}

// Format canonicalizes raw into international form and validates it. It
// returns ErrInvalidPhoneNumber when the result does not match the
// configured pattern.
func (f *Formatter) Format(raw string) (string, error) {
	formatted := f.canonicalize(raw)
	if !f.pattern.MatchString(formatted) {
		return "", ErrInvalidPhoneNumber
	}
	return formatted, nil
}

// CountryName reports the human-readable name of the configured country.
func (f *Formatter) CountryName() string {
	return f.rule.name
}

func (f *Formatter) canonicalize(raw string) string {
	cleaned := nonDialable.ReplaceAllString(raw, "")

	if strings.HasPrefix(cleaned, f.countryCode) {
		return cleaned
	}

	digits := strings.TrimPrefix(f.countryCode, "+")
	if strings.HasPrefix(cleaned, digits) && len(cleaned) > len(digits) {
		return "+" + cleaned
	}

	if f.rule.localize != nil {
		if formatted, ok := f.rule.localize(cleaned); ok {
			return formatted
		}
	}

	return f.countryCode + strings.TrimLeft(cleaned, "0")
}
