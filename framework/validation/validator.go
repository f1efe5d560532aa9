package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// ── Validator ────────────────────────────────────────────────────────────────

// Rules is a map of field → pipe-separated rule string.
// e.g. Rules{"email": "required|email", "password": "required|password:8"}
type Rules map[string]string

// Option configures a Validator.
type Option func(*Validator)

// WithTrim trims surrounding whitespace from every value before any rule sees it.
func WithTrim() Option {
	return func(v *Validator) { v.trim = true }
}

// WithAttributes replaces raw field names inside messages.
//
//	validation.WithAttributes(map[string]string{"confirmPassword": "confirm password"})
func WithAttributes(attrs map[string]string) Option {
	return func(v *Validator) { v.attributes = attrs }
}

// WithMessages overrides default messages. Keys are "field.rule" or "rule";
// the placeholders :attribute, :other, :min and :max are substituted.
//
//	validation.WithMessages(map[string]string{"confirmPassword.same": "Passwords do not match"})
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) { v.messages = messages }
}

// Validator validates a flat map of input values.
type Validator struct {
	data       map[string]string
	rules      Rules
	errors     *Errors
	trim       bool
	attributes map[string]string
	messages   map[string]string
}

// Make creates a new Validator — mirrors Validator::make($data, $rules).
func Make(data map[string]string, rules Rules, opts ...Option) *Validator {
	v := &Validator{
		data:   data,
		rules:  rules,
		errors: &Errors{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fails runs validation and returns true if any rule fails.
func (v *Validator) Fails() bool {
	v.validate()
	return v.errors.Has()
}

// Passes runs validation and returns true if all rules pass.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the bag from the last run, running validation first if it
// never ran.
func (v *Validator) Errors() *Errors {
	if v.errors.Bag == nil {
		v.validate()
	}
	return v.errors
}

// ── Core validation loop ─────────────────────────────────────────────────────

func (v *Validator) validate() {
	v.errors = &Errors{Bag: make(map[string]*FieldError)}

	for field, ruleStr := range v.rules {
		value := v.value(field)

		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}

			// Parse rule name and optional parameter: min:3 → name=min, param=3
			name, param, _ := strings.Cut(rule, ":")

			if !v.applyRule(field, value, name, param) {
				break // stop on first failure (like Laravel's bail behaviour)
			}
		}
	}
}

func (v *Validator) value(field string) string {
	value := v.data[field]
	if v.trim {
		value = strings.TrimSpace(value)
	}
	return value
}

// applyRule returns true if processing of the field should continue.
func (v *Validator) applyRule(field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			v.fail(field, rule, KindEmptyField, "The :attribute field is required.", nil)
			return false
		}

	case "nullable":
		// Empty values skip the remaining rules.
		if value == "" {
			return false
		}

	case "email":
		if !isEmail(value) {
			v.fail(field, rule, KindInvalidFormat, "The :attribute must be a valid email address.", nil)
			return false
		}

	case "regex":
		re, err := compile(param)
		if err != nil || !re.MatchString(value) {
			v.fail(field, rule, KindInvalidFormat, "The :attribute format is invalid.", nil)
			return false
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) < n {
			v.fail(field, rule, KindInvalidLength, "The :attribute must be at least :min characters.", map[string]string{":min": param})
			return false
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) > n {
			v.fail(field, rule, KindInvalidLength, "The :attribute may not be greater than :max characters.", map[string]string{":max": param})
			return false
		}

	case "between":
		lo, hi, ok := strings.Cut(param, ",")
		if !ok {
			break
		}
		lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
		min, _ := strconv.Atoi(lo)
		max, _ := strconv.Atoi(hi)
		l := utf8.RuneCountInString(value)
		if l < min || l > max {
			v.fail(field, rule, KindInvalidLength, "The :attribute must be between :min and :max characters.", map[string]string{":min": lo, ":max": hi})
			return false
		}

	case "password":
		// password:n — minimum strength policy; n <= 0 disables the check.
		n, _ := strconv.Atoi(param)
		if n > 0 && utf8.RuneCountInString(value) < n {
			v.fail(field, rule, KindTooWeak, "The :attribute must be at least :min characters.", map[string]string{":min": param})
			return false
		}

	case "same":
		if v.value(param) != value {
			v.fail(field, rule, KindMismatch, "The :attribute and :other must match.", map[string]string{":other": v.attribute(param)})
			return false
		}

	case "confirmed":
		// Expects data[field+"_confirmation"] to match
		if v.value(field+"_confirmation") != value {
			v.fail(field, rule, KindMismatch, "The :attribute confirmation does not match.", nil)
			return false
		}
	}

	return true
}

// ── Messages ─────────────────────────────────────────────────────────────────

func (v *Validator) fail(field, rule string, kind Kind, fallback string, params map[string]string) {
	msg, ok := v.messages[field+"."+rule]
	if !ok {
		msg, ok = v.messages[rule]
	}
	if !ok {
		msg = fallback
	}

	pairs := []string{":attribute", v.attribute(field)}
	for k, val := range params {
		pairs = append(pairs, k, val)
	}
	v.errors.add(field, kind, strings.NewReplacer(pairs...).Replace(msg))
}

func (v *Validator) attribute(field string) string {
	if name, ok := v.attributes[field]; ok {
		return name
	}
	return field
}

// ── Patterns ─────────────────────────────────────────────────────────────────

// emailPattern accepts local-part "@" two or more non-empty dot-separated
// domain labels.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)+$`)

// isEmail also rejects Unicode whitespace, which \s does not cover.
func isEmail(value string) bool {
	return strings.IndexFunc(value, unicode.IsSpace) < 0 && emailPattern.MatchString(value)
}

// patterns caches compiled regex: rule parameters.
var patterns sync.Map

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("validation: bad regex %q: %w", pattern, err)
	}
	patterns.Store(pattern, re)
	return re, nil
}
