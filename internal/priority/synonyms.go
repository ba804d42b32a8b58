package priority

// SynonymTable maps a canonical pattern token to the surface forms that satisfy it.
// Lookup is by key only and never chains through a second entry.
type SynonymTable map[string][]string

// Expand returns the set of tokens that satisfy token. The token itself is
// always a member.
func (t SynonymTable) Expand(token string) map[string]struct{} {
	forms, ok := t[token]
	if !ok {
		return map[string]struct{}{token: {}}
	}
	set := make(map[string]struct{}, len(forms)+1)
	set[token] = struct{}{}
	for _, form := range forms {
		set[form] = struct{}{}
	}
	return set
}

// alternatives is Expand in a stable slice form, key first.
func (t SynonymTable) alternatives(token string) []string {
	out := []string{token}
	seen := map[string]struct{}{token: {}}
	for _, form := range t[token] {
		if _, dup := seen[form]; dup {
			continue
		}
		seen[form] = struct{}{}
		out = append(out, form)
	}
	return out
}
