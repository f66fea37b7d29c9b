package logpoint

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Placeholder is the marker a normalized message template uses for every
// value slot.
const Placeholder = "{}"

var (
	expressionPattern = regexp.MustCompile(`\{([^}]*)\}`)
	numericPattern    = regexp.MustCompile(`^[+-]?\d+$`)
)

// autoRules binds one live rule to every parameter that is not excluded.
func autoRules(params []Parameter) []ParameterRule {
	rules := make([]ParameterRule, 0, len(params))
	for i, p := range params {
		if !p.Excluded {
			rules = append(rules, liveRule(i, p))
		}
	}
	return rules
}

// autoMessage turns a camel-case method name into lower-case words and
// appends one placeholder per value.
func autoMessage(name string, placeholders int) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	for range placeholders {
		b.WriteString(" " + Placeholder)
	}
	return b.String()
}

// explicitRules resolves every {expression} of message, in scan order,
// against params. Expressions that cannot be resolved become static rules
// with a diagnostic text.
func explicitRules(message string, params []Parameter) []ParameterRule {
	matches := expressionPattern.FindAllStringSubmatch(message, -1)
	rules := make([]ParameterRule, 0, len(matches))

	// Empty expressions count up from 0 on their own, ignoring numeric ones.
	defaultIndex := 0
	for _, match := range matches {
		expr := match[1]

		switch {
		case expr == "":
			rules = append(rules, indexedRule(defaultIndex, params))
			defaultIndex++
		case numericPattern.MatchString(expr):
			index, err := strconv.Atoi(expr)
			if err != nil {
				rules = append(rules, staticRule(invalidIndexText+expr))
				continue
			}
			rules = append(rules, indexedRule(index, params))
		default:
			rules = append(rules, staticRule(invalidExpressionText+expr))
		}
	}
	return rules
}

func indexedRule(index int, params []Parameter) ParameterRule {
	if index < 0 || index >= len(params) {
		return staticRule(invalidIndexText + strconv.Itoa(index))
	}
	return liveRule(index, params[index])
}

// normalizeMessage replaces every {expression} with a bare placeholder and
// leaves all other text untouched.
func normalizeMessage(message string) string {
	return expressionPattern.ReplaceAllLiteralString(message, Placeholder)
}
