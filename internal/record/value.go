package record

import "encoding/json"

// ValueKind tags one node of a parsed JSON tree.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	KindNull
	KindObject
	KindArray
)

// Value is one node of a parsed JSON tree. Object members keep the input's
// insertion order, which Go maps would not.
type Value struct {
	Kind    ValueKind
	Str     string
	Num     json.Number
	Boolean bool
	Members []Member // KindObject
	Items   []Value  // KindArray
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// setMember inserts a key/value pair. Duplicate keys keep the position of
// the first occurrence and the value of the last one.
func (v *Value) setMember(key string, val Value) {
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}
