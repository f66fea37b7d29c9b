package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalemi-dev/logkit/config"
	"github.com/aalemi-dev/logkit/discovery"
	"github.com/aalemi-dev/logkit/interceptor"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/logpoint"
)

var errNoCatalog = errors.New("no catalog given: use --catalog or set catalog in the config")

type rootOptions struct {
	configFile  string
	catalogFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "logplan",
		Short:        "Compile method catalogs into log plans",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: environment only)")
	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "method catalog file (overrides the config)")

	root.AddCommand(newExplainCmd(opts), newCheckCmd(opts), newEnvCmd())
	return root
}

// compiled is one catalog method with its plan.
type compiled struct {
	method *logpoint.Method
	plan   *logpoint.Plan
}

// compile loads the configuration and catalog and builds the plans of the
// selected identities, or of every method when none are given.
func (o *rootOptions) compile(identities []string) ([]compiled, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.Load(o.configFile)
	} else {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		return nil, err
	}

	log := logger.NewLoggerClient(cfg.Logger)
	defer func() { _ = log.Sync() }()

	path := o.catalogFile
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return nil, errNoCatalog
	}

	catalog, err := discovery.LoadCatalogFile(path)
	if err != nil {
		log.Error("Failed to load catalog", err, map[string]interface{}{"path": path})
		return nil, err
	}
	log.Debug("Catalog loaded", nil, map[string]interface{}{"path": path, "methods": catalog.Len()})

	methods := catalog.Methods()
	if len(identities) > 0 {
		methods = methods[:0]
		for _, id := range identities {
			m, err := catalog.Lookup(id)
			if err != nil {
				return nil, err
			}
			methods = append(methods, m)
		}
	}

	plans := interceptor.NewPlanCache()
	out := make([]compiled, 0, len(methods))
	for _, m := range methods {
		out = append(out, compiled{method: m, plan: plans.Get(m)})
	}
	return out, nil
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables the configuration reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
			return err
		},
	}
}
