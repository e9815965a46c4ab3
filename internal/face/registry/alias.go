package registry

// Aliases holds face alias links. A face has at most one alias target;
// chains are followed during name resolution, never during merging.
type Aliases struct {
	targets map[string]string
}

// NewAliases creates an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{targets: make(map[string]string)}
}

// Set makes name an alias for target.
func (a *Aliases) Set(name, target string) {
	a.targets[name] = target
}

// Clear removes the alias link of name.
func (a *Aliases) Clear(name string) {
	delete(a.targets, name)
}

// Target returns the direct alias target of name, if any.
func (a *Aliases) Target(name string) (string, bool) {
	t, ok := a.targets[name]
	return t, ok
}

// Resolve follows the alias chain of name to its end using a tortoise/hare
// cycle detector. On a cycle it returns the default face name together with
// an AliasCycleError; the caller decides whether to surface or just log it.
func (a *Aliases) Resolve(name string) (string, error) {
	orig := name
	tortoise, hare := name, name

	for {
		name = hare
		next, ok := a.targets[hare]
		if !ok {
			break
		}
		hare = next

		name = hare
		next, ok = a.targets[hare]
		if !ok {
			break
		}
		hare = next

		tortoise = a.targets[tortoise]
		if hare == tortoise {
			return DefaultFaceName, &AliasCycleError{Name: orig}
		}
	}

	return name, nil
}
