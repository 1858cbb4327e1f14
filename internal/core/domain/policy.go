package domain

// Policy is the resolved filter rule for a single workspace: accept-all for
// magic, merged deny list for permissive, only list for laser-eyes.
type Policy struct {
	Mode Mode
	// Deny holds the merged global and local deny patterns (permissive mode).
	Deny []string
	// Only holds the mandatory include patterns (laser-eyes mode).
	Only []string
}

// AcceptAll is the magic-mode policy.
func AcceptAll() Policy {
	return Policy{Mode: ModeMagic}
}

// DenyPolicy builds a permissive policy from global and local deny patterns.
// Global patterns are evaluated first but order carries no semantics.
func DenyPolicy(globalDeny, localDeny []string) Policy {
	merged := make([]string, 0, len(globalDeny)+len(localDeny))
	merged = append(merged, globalDeny...)
	merged = append(merged, localDeny...)
	return Policy{Mode: ModePermissive, Deny: merged}
}

// OnlyPolicy builds a laser-eyes policy. An empty pattern list includes nothing.
func OnlyPolicy(only []string) Policy {
	return Policy{Mode: ModeExclusive, Only: only}
}

// Includes classifies a program under the policy. It is pure over
// (program, policy) and never consults build state.
func (pol Policy) Includes(p Program) bool {
	switch pol.Mode {
	case ModePermissive:
		return !p.MatchesAny(pol.Deny)
	case ModeExclusive:
		return p.MatchesAny(pol.Only)
	default:
		return true
	}
}
