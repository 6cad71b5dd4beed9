package jcr

import (
	"encoding/json"

	"github.com/go-faster/errors"
)

type resolveCtx struct {
	// Store references to detect infinite recursive references.
	refs map[string]struct{}
}

func newResolveCtx() *resolveCtx {
	return &resolveCtx{
		refs: map[string]struct{}{},
	}
}

func (r *resolveCtx) add(ref string) error {
	if _, ok := r.refs[ref]; ok {
		return errors.New("infinite recursion")
	}
	r.refs[ref] = struct{}{}
	return nil
}

func (r *resolveCtx) delete(ref string) {
	delete(r.refs, ref)
}

// resolve compiles rule referenced by ref.
//
// Compiled rules are cached, so every reference to the same definition shares
// the same Rule.
func (p *compiler) resolve(ref string, ctx *resolveCtx) (Rule, error) {
	if r, ok := p.refcache[ref]; ok {
		return r, nil
	}

	if err := ctx.add(ref); err != nil {
		return nil, err
	}
	defer func() {
		// Drop the resolved ref to prevent false-positive infinite recursion detection.
		ctx.delete(ref)
	}()

	data, err := findPointer(ref, p.root)
	if err != nil {
		return nil, errors.Wrap(err, "find rule")
	}

	var raw RawRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}

	r, err := p.compile(raw, ctx)
	if err != nil {
		return nil, err
	}
	p.refcache[ref] = r
	return r, nil
}
