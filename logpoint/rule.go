package logpoint

// Converter turns a raw argument value into its loggable representation.
type Converter interface {
	Convert(value any) any
}

// ParameterRule says where one placeholder value of a plan comes from:
// either a live argument of the call or a fixed diagnostic text.
type ParameterRule struct {
	index int
	param Parameter
	text  string
}

func liveRule(index int, param Parameter) ParameterRule {
	return ParameterRule{index: index, param: param}
}

func staticRule(text string) ParameterRule {
	return ParameterRule{index: -1, text: text}
}

// IsStatic reports whether the rule carries fixed text instead of an argument.
func (r ParameterRule) IsStatic() bool {
	return r.index < 0
}

// Index is the 0-based argument position of a live rule, -1 for a static one.
func (r ParameterRule) Index() int {
	return r.index
}

// Parameter is the parameter a live rule is bound to.
func (r ParameterRule) Parameter() Parameter {
	return r.param
}

// Text is the diagnostic text of a static rule.
func (r ParameterRule) Text() string {
	return r.text
}

// Extract returns the value this rule contributes for one call.
// Static rules return their text. Live rules pass the argument at their
// index through conv, or return it unchanged when conv is nil.
// A live rule whose index is beyond args yields nil.
func (r ParameterRule) Extract(args []any, conv Converter) any {
	if r.IsStatic() {
		return r.text
	}
	if r.index >= len(args) {
		return nil
	}
	if conv == nil {
		return args[r.index]
	}
	return conv.Convert(args[r.index])
}
