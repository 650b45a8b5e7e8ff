package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jba/aamap"
)

// An op is one step of an operation script.
type op struct {
	del bool
	key int
	val int
}

func (o op) String() string {
	if o.del {
		return fmt.Sprintf("-%d", o.key)
	}
	return fmt.Sprintf("%d=%d", o.key, o.val)
}

// parseOps parses script tokens:
//
//	k, +k   insert k with value k
//	k=v     insert k with value v
//	-k      erase k
func parseOps(tokens []string) ([]op, error) {
	ops := make([]op, 0, len(tokens))
	for _, tok := range tokens {
		o, err := parseOp(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func parseOp(tok string) (op, error) {
	var o op
	s := tok
	switch {
	case strings.HasPrefix(s, "-"):
		o.del = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	ks, vs, hasVal := strings.Cut(s, "=")
	if hasVal && o.del {
		return op{}, fmt.Errorf("bad op %q: erase takes no value", tok)
	}
	k, err := strconv.Atoi(ks)
	if err != nil {
		return op{}, fmt.Errorf("bad op %q: %w", tok, err)
	}
	o.key, o.val = k, k
	if hasVal {
		if o.val, err = strconv.Atoi(vs); err != nil {
			return op{}, fmt.Errorf("bad op %q: %w", tok, err)
		}
	}
	return o, nil
}

// apply runs ops against m and returns how many entries were added and
// removed.
func apply(m *aamap.Map[int, int], ops []op) (added, removed int) {
	for _, o := range ops {
		if o.del {
			removed += m.Erase(o.key)
			continue
		}
		if _, ok := m.Insert(o.key, o.val); ok {
			added++
		}
	}
	return added, removed
}
