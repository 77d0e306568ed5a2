package shape

import (
	"sync"

	"github.com/gear-tech/scale/errors"
)

// maxBindings bounds the memo key. The catalog's widest definition takes
// four parameters; eight leaves headroom.
const maxBindings = 8

type instKey struct {
	def  *Shape
	args [maxBindings]*Shape
}

// instCache memoizes (definition, bindings) -> concrete shape for the life
// of the process. The key space is fixed by the program's compiled type
// usage, so there is no eviction. Safe for concurrent readers.
var instCache sync.Map

// Instantiate resolves every ParamAt placeholder in def against args and
// returns a fully concrete shape. A missing binding is a construction-time
// error, caught before any bytes are touched. Bindings must themselves be
// concrete.
//
// The same definition instantiated with the same bindings returns the same
// *Shape on every call.
func Instantiate(def *Shape, args ...*Shape) (*Shape, error) {
	if len(args) > maxBindings {
		return nil, errors.New(errors.PhaseBuild, errors.KindUnboundParam).
			Detail("instantiate %s: at most %d type parameters supported, got %d", def.String(), maxBindings, len(args)).
			Build()
	}
	for i, a := range args {
		if a == nil {
			return nil, errors.UnboundParam(def.String(), i, len(args))
		}
		if a.HasParams() {
			return nil, errors.New(errors.PhaseBuild, errors.KindUnboundParam).
				Detail("instantiate %s: binding _%d is not concrete", def.String(), i).
				Build()
		}
	}

	key := instKey{def: def}
	copy(key.args[:], args)
	if cached, ok := instCache.Load(key); ok {
		return cached.(*Shape), nil
	}

	out, err := substitute(def, args, def.String())
	if err != nil {
		return nil, err
	}

	// Concurrent first callers may both miss the Load above; the first
	// stored shape wins so the identity guarantee holds.
	cached, _ := instCache.LoadOrStore(key, out)
	return cached.(*Shape), nil
}

// substitute rewrites s with args bound, sharing subtrees that contain no
// parameters.
func substitute(s *Shape, args []*Shape, root string) (*Shape, error) {
	switch s.Kind {
	case KindParam:
		if s.Param >= len(args) {
			return nil, errors.UnboundParam(root, s.Param, len(args))
		}
		return args[s.Param], nil

	case KindArray, KindSequence, KindOption:
		elem, err := substitute(s.Elem, args, root)
		if err != nil {
			return nil, err
		}
		if elem == s.Elem {
			return s, nil
		}
		clone := *s
		clone.Elem = elem
		return &clone, nil

	case KindResult:
		ok, err := substituteArm(s.OK, args, root)
		if err != nil {
			return nil, err
		}
		errArm, err := substituteArm(s.Err, args, root)
		if err != nil {
			return nil, err
		}
		if ok == s.OK && errArm == s.Err {
			return s, nil
		}
		clone := *s
		clone.OK, clone.Err = ok, errArm
		return &clone, nil

	case KindStruct, KindTuple:
		fields, changed, err := substituteFields(s.Fields, args, root)
		if err != nil {
			return nil, err
		}
		if !changed {
			return s, nil
		}
		clone := *s
		clone.Fields = fields
		return &clone, nil

	case KindEnum:
		variants := make([]Variant, len(s.Variants))
		changed := false
		for i, v := range s.Variants {
			variants[i] = v
			if v.Payload == nil {
				continue
			}
			payload, err := substitute(v.Payload, args, root)
			if err != nil {
				return nil, err
			}
			if payload != v.Payload {
				variants[i].Payload = payload
				changed = true
			}
		}
		if !changed {
			return s, nil
		}
		clone := *s
		clone.Variants = variants
		return &clone, nil

	default:
		return s, nil
	}
}

func substituteArm(s *Shape, args []*Shape, root string) (*Shape, error) {
	if s == nil {
		return nil, nil
	}
	return substitute(s, args, root)
}

func substituteFields(fields []Field, args []*Shape, root string) ([]Field, bool, error) {
	out := make([]Field, len(fields))
	changed := false
	for i, f := range fields {
		out[i] = f
		sub, err := substitute(f.Shape, args, root)
		if err != nil {
			return nil, false, err
		}
		if sub != f.Shape {
			out[i].Shape = sub
			changed = true
		}
	}
	return out, changed, nil
}
