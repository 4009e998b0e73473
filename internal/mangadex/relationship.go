package mangadex

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Relationship points from one object to another. Attributes is only set when
// the API inlined the related object (reference expansion) and the payload
// decoded into the shape registered for Type; otherwise it is nil and ID and
// Type are still usable.
type Relationship struct {
	ID         string
	Type       ObjectType
	Related    string
	Attributes Attributes
}

// RawRelationship is a relationship exactly as it appears on the wire.
type RawRelationship struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Related    string          `json:"related,omitempty"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

// Resolve decodes raw into the shape registered for t. It never fails: a
// payload that does not fit the shape is dropped and the relationship is
// returned without attributes.
func Resolve(id string, t ObjectType, raw json.RawMessage) Relationship {
	rel := Relationship{ID: id, Type: t}
	decode := decoderFor(t)
	if decode == nil || isAbsent(raw) {
		return rel
	}
	attrs, err := decode(raw)
	if err != nil {
		log.Debug().Err(err).Str("id", id).Str("type", t.String()).Msg("Discarding relationship attributes")
		return rel
	}
	rel.Attributes = attrs
	return rel
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (r RawRelationship) Resolve() Relationship {
	rel := Resolve(r.ID, ParseObjectType(r.Type), r.Attributes)
	rel.Related = r.Related
	return rel
}

// ResolveAll resolves each record on its own, keeping order and duplicates:
// the same person shows up once as author and once as artist.
func ResolveAll(raw []RawRelationship) Relationships {
	rels := make(Relationships, 0, len(raw))
	for _, r := range raw {
		rels = append(rels, r.Resolve())
	}
	return rels
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	var raw RawRelationship
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = raw.Resolve()
	return nil
}

type Relationships []Relationship

func (rs Relationships) OfType(t ObjectType) Relationships {
	var out Relationships
	for _, r := range rs {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func (rs Relationships) First(t ObjectType) (Relationship, bool) {
	for _, r := range rs {
		if r.Type == t {
			return r, true
		}
	}
	return Relationship{}, false
}

// AttributesOf returns the attributes of the first relationship of type t
// that decoded into T.
func AttributesOf[T Attributes](rs Relationships, t ObjectType) (T, bool) {
	for _, r := range rs.OfType(t) {
		if attrs, ok := r.Attributes.(T); ok {
			return attrs, true
		}
	}
	var zero T
	return zero, false
}

// AllAttributesOf collects every decoded T among relationships of type t.
func AllAttributesOf[T Attributes](rs Relationships, t ObjectType) []T {
	var out []T
	for _, r := range rs.OfType(t) {
		if attrs, ok := r.Attributes.(T); ok {
			out = append(out, attrs)
		}
	}
	return out
}
