package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// resolveID matches ref against ids: an exact match wins, otherwise ref must
// be the prefix or suffix of exactly one ID. UUID v7 IDs share their leading
// timestamp digits, so the short form shown in listings is the suffix.
func resolveID(kind, ref string, ids []string) (string, error) {
	if ref == "" {
		return "", usagef("%s id must not be empty", kind)
	}
	var matches []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) || strings.HasSuffix(id, ref) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, ref, types.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", usagef("%s id %q is ambiguous (%d matches)", kind, ref, len(matches))
	}
}

func (a *app) resolvePin(ref string) (types.Pin, error) {
	pins := a.board.Pins()
	ids := make([]string, len(pins))
	for i, p := range pins {
		ids[i] = p.ID
	}
	id, err := resolveID("pin", ref, ids)
	if err != nil {
		return types.Pin{}, err
	}
	p, _ := a.board.Pin(id)
	return p, nil
}

func resolveItem(p types.Pin, ref string) (string, error) {
	if p.Type != types.PinList {
		return "", fmt.Errorf("pin %s is a %s pin: %w", shortID(p.ID), p.Type, types.ErrWrongPinType)
	}
	ids := make([]string, len(p.ListItems))
	for i, it := range p.ListItems {
		ids[i] = it.ID
	}
	// A 1-based position takes precedence over ID prefixes and suffixes.
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}
	return resolveID("item", ref, ids)
}

func (a *app) resolveSnapshot(ref string) (types.Snapshot, error) {
	snaps := a.board.Snapshots()
	ids := make([]string, len(snaps))
	for i, s := range snaps {
		ids[i] = s.ID
	}
	id, err := resolveID("snapshot", ref, ids)
	if err != nil {
		// Fall back to an exact name match.
		for _, s := range snaps {
			if s.Name == ref {
				return s, nil
			}
		}
		return types.Snapshot{}, err
	}
	s, _ := a.board.Snapshot(id)
	return s, nil
}

// parseFloats parses each arg as a finite float64.
func parseFloats(args ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, usagef("%q is not a number", s)
		}
		if !types.Finite(f) {
			return nil, usagef("%q is not a finite number", s)
		}
		out[i] = f
	}
	return out, nil
}
