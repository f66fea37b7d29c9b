package logpoint

// Build compiles the log plan for m.
//
// Build never fails: template expressions that cannot be resolved turn into
// static rules whose diagnostic text shows up in the log output instead.
// It keeps no state between calls and may run concurrently for any number
// of methods. Building twice from the same metadata yields equal plans.
func Build(m *Method) *Plan {
	logged := m.logged()
	errorIndex := trailingErrorIndex(m.Params)

	var (
		rules        []ParameterRule
		message      string
		placeholders int
	)
	if logged.Message == "" {
		autoParams := m.Params
		if errorIndex >= 0 {
			autoParams = m.Params[:errorIndex]
		}
		rules = autoRules(autoParams)
		placeholders = len(rules)
		message = autoMessage(m.Name, placeholders)
	} else {
		rules = explicitRules(logged.Message, m.Params)
		placeholders = len(rules)
		message = normalizeMessage(logged.Message)
	}

	plan := &Plan{
		logger:       resolveLogger(m),
		level:        resolveLevel(m),
		message:      message,
		placeholders: placeholders,
		params:       rules,
		logReturn:    hasReturnValue(m),
	}

	if errorIndex >= 0 {
		errorRule := liveRule(errorIndex, m.Params[errorIndex])
		plan.errorParam = &errorRule
		if last := len(rules) - 1; last >= 0 && rules[last].index == errorIndex {
			plan.params = rules[:last:last]
		}
	}
	return plan
}

// trailingErrorIndex returns the index of the last parameter when its type
// implements error, -1 otherwise.
func trailingErrorIndex(params []Parameter) int {
	last := len(params) - 1
	if last >= 0 && isError(params[last].Type) {
		return last
	}
	return -1
}

// resolveLevel returns the first level that is not Derived, looking at the
// method and then at each enclosing scope from the inside out.
func resolveLevel(m *Method) Level {
	if level := m.logged().Level; level != Derived {
		return level
	}
	for _, scope := range m.Scopes {
		if scope.Logged != nil && scope.Logged.Level != Derived {
			return scope.Logged.Level
		}
	}
	return DefaultLevel
}

// resolveLogger returns the configured logger name, or else the outermost
// enclosing type. Free functions fall back to their outermost scope, and
// methods without any scope to their own name.
func resolveLogger(m *Method) string {
	if name := m.logged().Logger; name != "" {
		return name
	}
	for i := len(m.Scopes) - 1; i >= 0; i-- {
		if m.Scopes[i].Kind == TypeScope {
			return m.Scopes[i].Name
		}
	}
	if len(m.Scopes) > 0 {
		return m.Scopes[len(m.Scopes)-1].Name
	}
	return m.Name
}

func hasReturnValue(m *Method) bool {
	results := m.Results
	if n := len(results); n > 0 && isError(results[n-1]) {
		results = results[:n-1]
	}
	return len(results) > 0
}
