package cliffgo

import (
	"encoding/json"

	"github.com/hupe1980/cliffgo/blade"
	"github.com/hupe1980/cliffgo/internal/bladestore"
)

type termJSON struct {
	Blade []blade.Index `json:"blade"`
	Value float64       `json:"value"`
}

type multivectorJSON struct {
	Terms []termJSON `json:"terms"`
}

// MarshalJSON encodes m as {"terms":[{"blade":[1,2],"value":-2}]} with
// terms in display order.
func (m Multivector) MarshalJSON() ([]byte, error) {
	terms := m.Terms()

	out := multivectorJSON{Terms: make([]termJSON, 0, len(terms))}
	for _, t := range terms {
		idx := t.Blade.Indices()
		if idx == nil {
			idx = []blade.Index{}
		}
		out.Terms = append(out.Terms, termJSON{Blade: idx, Value: t.Value})
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON. Blades are
// canonicalized, so non-canonical input may flip signs; repeated blades
// are summed.
func (m *Multivector) UnmarshalJSON(data []byte) error {
	var in multivectorJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	s := bladestore.WithCapacity(len(in.Terms))
	for _, t := range in.Terms {
		b, v := blade.Canonicalize(t.Blade, t.Value)
		accumulate(s, b, v)
	}

	*m = newMultivector(s)

	return nil
}
