package logpoint

// Plan is the pre-resolved description of how calls to one method are
// logged. It is immutable and safe for concurrent use once Build returns it.
type Plan struct {
	logger       string
	level        Level
	message      string
	placeholders int
	params       []ParameterRule
	errorParam   *ParameterRule
	logReturn    bool
}

// Logger is the name of the logger the plan writes to.
func (p *Plan) Logger() string {
	return p.logger
}

// Level is the resolved severity; never Derived.
func (p *Plan) Level() Level {
	return p.level
}

// Message is the normalized message template, with every value slot
// written as Placeholder.
func (p *Plan) Message() string {
	return p.message
}

// Placeholders is the number of value slots in Message.
func (p *Plan) Placeholders() int {
	return p.placeholders
}

// Params returns the ordered parameter rules. The slice is a copy.
func (p *Plan) Params() []ParameterRule {
	out := make([]ParameterRule, len(p.params))
	copy(out, p.params)
	return out
}

// ErrorParam returns the rule for the trailing error parameter, if the
// method declares one.
func (p *Plan) ErrorParam() (ParameterRule, bool) {
	if p.errorParam == nil {
		return ParameterRule{}, false
	}
	return *p.errorParam, true
}

// LogReturnValue reports whether the method has a result worth logging.
func (p *Plan) LogReturnValue() bool {
	return p.logReturn
}

// Values extracts the placeholder values of one call, in rule order.
func (p *Plan) Values(args []any, conv Converter) []any {
	values := make([]any, len(p.params))
	for i, rule := range p.params {
		values[i] = rule.Extract(args, conv)
	}
	return values
}
