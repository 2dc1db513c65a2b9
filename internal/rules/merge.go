package rules

func firstSet(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func lastSet(a, b string) string {
	if b != "" {
		return b
	}

	return a
}

func lastBool(a, b *bool) *bool {
	if b != nil {
		v := *b
		return &v
	}

	return a
}

func unionList(a, b []string) []string {
	if len(b) == 0 {
		return a
	}

	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))

	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}

			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}

func unionMap(a, b map[string]string) map[string]string {
	if len(b) == 0 {
		return a
	}

	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}

	for k, v := range b {
		out[k] = v
	}

	return out
}

// mergeByKey appends b to a, folding entries whose key already exists into the
// existing entry so that the result holds one merged rule per key in first-seen
// order.
func mergeByKey[T any](a, b []T, key func(T) string, merge func(T, T) T) []T {
	if len(b) == 0 {
		return a
	}

	out := make([]T, 0, len(a)+len(b))
	pos := make(map[string]int, len(a)+len(b))

	for _, list := range [][]T{a, b} {
		for _, r := range list {
			k := key(r)
			if i, ok := pos[k]; ok {
				out[i] = merge(out[i], r)
				continue
			}

			pos[k] = len(out)
			out = append(out, r)
		}
	}

	return out
}

func memberKey(r MemberCorrection) string     { return r.Name }
func functionKey(r FunctionCorrection) string { return r.Name + "\x00" + r.ReturnType }
func propertyKey(r PropertyCorrection) string { return r.Name + "\x00" + r.Type }
func classKey(r ClassCorrection) string       { return r.Name + "\x00" + r.SuperType }

func mergeMembers(a, b []MemberCorrection) []MemberCorrection {
	return mergeByKey(a, b, memberKey, MemberCorrection.Merge)
}

func mergeFunctions(a, b []FunctionCorrection) []FunctionCorrection {
	return mergeByKey(a, b, functionKey, FunctionCorrection.Merge)
}

func mergeProperties(a, b []PropertyCorrection) []PropertyCorrection {
	return mergeByKey(a, b, propertyKey, PropertyCorrection.Merge)
}

func mergeClasses(a, b []ClassCorrection) []ClassCorrection {
	return mergeByKey(a, b, classKey, ClassCorrection.Merge)
}
