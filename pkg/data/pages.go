package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Pages is the ordered list of page image references of a chapter.
//
// Catalog documents store pages either as an array or as an object keyed by
// page number ({"2": "b.jpg", "1": "a.jpg"}). Both forms are normalized here,
// at decode time, so every reader sees a plain ordered slice.
type Pages []string

func (p *Pages) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = nil
		return nil
	}

	if b[0] == '[' {
		var list []string
		if err := json.Unmarshal(b, &list); err != nil {
			return fmt.Errorf("pages: %w", err)
		}
		*p = list
		return nil
	}

	var keyed map[string]string
	if err := json.Unmarshal(b, &keyed); err != nil {
		return fmt.Errorf("pages: %w", err)
	}
	*p = PagesFromMap(keyed)
	return nil
}

// PagesFromMap orders keyed pages by ascending numeric key. Keys that are
// not integers go last, in lexical order.
func PagesFromMap(keyed map[string]string) Pages {
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			if ni != nj {
				return ni < nj
			}
			return keys[i] < keys[j]
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	out := make(Pages, len(keys))
	for i, k := range keys {
		out[i] = keyed[k]
	}
	return out
}
