package jcr

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// compiler compiles rule documents.
type compiler struct {
	root     []byte
	refcache map[string]Rule
}

// newCompiler creates new compiler.
func newCompiler(root []byte) *compiler {
	return &compiler{
		root:     root,
		refcache: map[string]Rule{},
	}
}

// Compile compiles given RawRule and returns compiled Rule.
func (p *compiler) Compile(raw RawRule) (Rule, error) {
	return p.compile(raw, newResolveCtx())
}

func (p *compiler) compile(raw RawRule, ctx *resolveCtx) (Rule, error) {
	if ref := raw.Ref; ref != "" {
		r, err := p.resolve(ref, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %q", ref)
		}
		return r, nil
	}

	switch raw.Type {
	case TypeAnyObject:
		return AnyObject(), nil
	case TypeAnyString:
		return AnyString(), nil
	case TypeAnyInteger:
		return AnyInteger(), nil
	case TypeNull:
		return Null(), nil
	case TypeBoolean, TypeString, TypeInteger, TypeUnsigned, TypeDouble:
		r, err := compileLiteral(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s value", raw.Type)
		}
		return r, nil
	case TypeIntegerRange:
		min, max := int64(math.MinInt64), int64(math.MaxInt64)
		if err := parseBounds(raw, &min, &max, (*jx.Decoder).Int64); err != nil {
			return nil, errors.Wrap(err, "integer range")
		}
		return IntegerRange(min, max), nil
	case TypeUnsignedRange:
		min, max := uint64(0), uint64(math.MaxUint64)
		if err := parseBounds(raw, &min, &max, (*jx.Decoder).UInt64); err != nil {
			return nil, errors.Wrap(err, "unsigned range")
		}
		return UnsignedRange(min, max), nil
	case TypeArray:
		return p.compileArray(raw, ctx)
	case TypeObject:
		return p.compileObject(raw, ctx)
	case "":
		return nil, errors.New(`either "type" or "$ref" must be set`)
	default:
		return nil, errors.Errorf("unexpected type %q", raw.Type)
	}
}

func compileLiteral(raw RawRule) (Rule, error) {
	if len(raw.Value) == 0 {
		return nil, errors.New("value is not set")
	}
	d := jx.GetDecoder()
	defer jx.PutDecoder(d)
	d.ResetBytes(raw.Value)

	switch raw.Type {
	case TypeBoolean:
		v, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return Bool(v), nil
	case TypeString:
		v, err := d.Str()
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case TypeInteger:
		v, err := d.Int64()
		if err != nil {
			return nil, err
		}
		return Integer(v), nil
	case TypeUnsigned:
		v, err := d.UInt64()
		if err != nil {
			return nil, err
		}
		return Unsigned(v), nil
	case TypeDouble:
		v, err := d.Float64()
		if err != nil {
			return nil, err
		}
		return Double(v, raw.Precision), nil
	default:
		return nil, errors.Errorf("unexpected literal type %q", raw.Type)
	}
}

func parseBounds[T int64 | uint64](raw RawRule, min, max *T, parse func(d *jx.Decoder) (T, error)) error {
	for _, v := range []struct {
		name string
		to   *T
		num  Num
	}{
		{"min", min, raw.Min},
		{"max", max, raw.Max},
	} {
		if len(v.num) == 0 {
			// Value is not set.
			continue
		}
		val, err := parse(jx.DecodeBytes(v.num))
		if err != nil {
			return errors.Wrap(err, v.name)
		}
		*v.to = val
	}
	return nil
}

func (p *compiler) compileArray(raw RawRule, ctx *resolveCtx) (Rule, error) {
	r := Array()
	r.Reserve(len(raw.Items))
	for i, item := range raw.Items {
		s, err := p.compile(item, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "items[%d]", i)
		}
		r.Append(s)
	}

	if err := p.include(r, raw.Include, ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (p *compiler) compileObject(raw RawRule, ctx *resolveCtx) (Rule, error) {
	r := Object()
	// Included members go first, so own members override them.
	if err := p.include(r, raw.Include, ctx); err != nil {
		return nil, err
	}

	optional := make(map[string]struct{}, len(raw.Optional))
	for _, name := range raw.Optional {
		if _, ok := optional[name]; ok {
			return nil, errors.Errorf(`"optional" list must be unique, duplicate %q`, name)
		}
		optional[name] = struct{}{}
	}

	frag := NewFragment()
	for _, m := range raw.Members {
		s, err := p.compile(m.Rule, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "member %q", m.Name)
		}
		if _, ok := optional[m.Name]; ok {
			frag.AddOptional(m.Name, s)
		} else {
			frag.Add(m.Name, s)
		}
	}
	Splice(r, frag)

	// Optional names may also refer to included members.
	for name := range optional {
		if err := r.SetOptional(name, true); err != nil {
			return nil, errors.Wrap(err, "optional")
		}
	}
	return r, nil
}

// include splices children of referenced composite rules into dst.
func (p *compiler) include(dst Rule, refs []string, ctx *resolveCtx) error {
	for _, ref := range refs {
		src, err := p.resolve(ref, ctx)
		if err != nil {
			return errors.Wrapf(err, "include %q", ref)
		}
		if src.IsObject() != dst.IsObject() {
			return errors.Errorf("include %q: cannot splice %s into %s", ref, src, dst)
		}
		if _, ok := src.(*ArrayRule); !ok && !src.IsObject() {
			return errors.Errorf("include %q: %s is not composite", ref, src)
		}
		Splice(dst, Children(src))
	}
	return nil
}
