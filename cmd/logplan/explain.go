package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/logkit/interceptor"
	"github.com/aalemi-dev/logkit/logpoint"
)

type planView struct {
	Method       string         `yaml:"method"`
	Logger       string         `yaml:"logger"`
	Level        logpoint.Level `yaml:"level"`
	Message      string         `yaml:"message"`
	Placeholders int            `yaml:"placeholders"`
	Params       []ruleView     `yaml:"params,omitempty"`
	ErrorParam   *ruleView      `yaml:"error_param,omitempty"`
	LogReturn    bool           `yaml:"log_return"`
	Diagnostics  int            `yaml:"diagnostics,omitempty"`
}

type ruleView struct {
	Index *int   `yaml:"index,omitempty"`
	Param string `yaml:"param,omitempty"`
	Text  string `yaml:"text,omitempty"`
}

func newRuleView(r logpoint.ParameterRule) ruleView {
	if r.IsStatic() {
		return ruleView{Text: r.Text()}
	}
	index := r.Index()
	return ruleView{Index: &index, Param: r.Parameter().Name}
}

func newPlanView(c compiled) planView {
	v := planView{
		Method:       c.method.Identity(),
		Logger:       c.plan.Logger(),
		Level:        c.plan.Level(),
		Message:      c.plan.Message(),
		Placeholders: c.plan.Placeholders(),
		LogReturn:    c.plan.LogReturnValue(),
		Diagnostics:  interceptor.Diagnostics(c.plan),
	}
	for _, r := range c.plan.Params() {
		v.Params = append(v.Params, newRuleView(r))
	}
	if r, ok := c.plan.ErrorParam(); ok {
		rv := newRuleView(r)
		v.ErrorParam = &rv
	}
	return v
}

func newExplainCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [identity...]",
		Short: "Print the compiled log plans as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := opts.compile(args)
			if err != nil {
				return err
			}

			views := make([]planView, 0, len(plans))
			for _, c := range plans {
				views = append(views, newPlanView(c))
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(views); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
