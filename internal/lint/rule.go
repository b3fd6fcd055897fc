package lint

import "dlint/internal/diag"

// Rule is one lint check. Run may be called repeatedly with different
// contexts; implementations must reset any walk state at the start of Run so
// repeated runs over the same input yield the same diagnostics.
type Rule interface {
	// Name is the stable key used for configuration and suppression.
	Name() string
	// Code is the diagnostic code every finding of this rule carries.
	Code() diag.Code
	Run(ctx *Context)
}

// Registry holds the known rules in registration order.
type Registry struct {
	rules []Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry with every built-in rule registered.
func Default() *Registry {
	reg := NewRegistry()
	reg.Register(NewFuncAttrRule())
	return reg
}

// Register appends a rule.
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Names returns the stable keys of all registered rules.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name())
	}
	return names
}

// Enabled filters the registered rules through the configuration.
func (r *Registry) Enabled(cfg Config) []Rule {
	enabled := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if cfg.RuleEnabled(rule.Name()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}
