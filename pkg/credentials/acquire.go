package credentials

import (
	"fmt"
	"strings"

	"github.com/vertti/setupcheck/pkg/logger"
	"github.com/vertti/setupcheck/pkg/output"
)

// Acquirer resolves a set of credentials.
type Acquirer struct {
	Env      EnvGetter       // default: process environment
	Sources  []Source        // consulted in order after Env
	Prompter Prompter        // default: NoInputPrompter
	Out      *output.Printer // where the prompt banner goes; nil disables it
}

// Acquire resolves every spec. Values come from the environment, then from
// the configured sources. Only when something is still missing does it
// prompt, once per missing credential and in the order given. An empty answer
// leaves the credential empty. The prompter is closed exactly once on every
// path.
func (a *Acquirer) Acquire(specs []Spec) (set Set, err error) {
	prompter := a.Prompter
	if prompter == nil {
		prompter = &NoInputPrompter{}
	}
	defer func() {
		if cerr := prompter.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing prompt: %w", cerr)
		}
	}()

	env := a.Env
	if env == nil {
		env = &RealEnvGetter{}
	}

	values := make(map[string]string, len(specs))
	var missing []Spec
	for _, spec := range specs {
		v := a.lookup(env, spec)
		values[spec.Name] = v
		if v == "" {
			missing = append(missing, spec)
		}
	}

	if len(missing) == 0 {
		return NewSet(values), nil
	}

	if a.Out != nil {
		a.Out.Heading("API Key Configuration")
		a.Out.Plain("You can provide API keys now or skip and test later.\n")
	}

	for _, spec := range missing {
		answer, err := prompter.Prompt(spec.Label + " (or press Enter to skip): ")
		if err != nil {
			return Set{}, fmt.Errorf("prompting for %s: %w", spec.Name, err)
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			values[spec.Name] = answer
			logger.Debug("credential entered interactively", "credential", spec.Name)
		} else {
			logger.Debug("credential skipped", "credential", spec.Name)
		}
	}

	return NewSet(values), nil
}

func (a *Acquirer) lookup(env EnvGetter, spec Spec) string {
	if v, ok := env.LookupEnv(spec.EnvVar); ok && v != "" {
		logger.Debug("credential found", "credential", spec.Name, "source", "env")
		return v
	}
	for _, src := range a.Sources {
		v, err := src.Lookup(spec)
		if err != nil {
			logger.Warn("credential source failed", "source", src.Name(), "credential", spec.Name, "err", err)
			continue
		}
		if v != "" {
			logger.Debug("credential found", "credential", spec.Name, "source", src.Name())
			return v
		}
	}
	return ""
}
