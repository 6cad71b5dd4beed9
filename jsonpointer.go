package jcr

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func splitFunc(s string, sep byte, cb func(s string) error) error {
	for {
		idx := strings.IndexByte(s, sep)
		if idx < 0 {
			break
		}
		if err := cb(s[:idx]); err != nil {
			return err
		}
		s = s[idx+1:]
	}
	return cb(s)
}

// findPointer resolves reference of form "#/a/b" against buf.
func findPointer(ref string, buf []byte) ([]byte, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, errors.Errorf("invalid reference %q: only local references are supported", ref)
	}
	ptr := ref[1:]
	if ptr == "" {
		return buf, nil
	}
	if ptr[0] != '/' {
		return nil, errors.Errorf("invalid pointer %q: pointer must start with '/'", ptr)
	}
	// Cut first /.
	ptr = ptr[1:]

	d := jx.GetDecoder()
	defer jx.PutDecoder(d)

	err := splitFunc(ptr, '/', func(part string) (err error) {
		part = unescape(part)
		var (
			result []byte
			ok     bool
		)
		d.ResetBytes(buf)
		switch tt := d.Next(); tt {
		case jx.Object:
			result, ok, err = findKey(d, part)
			if err != nil {
				return errors.Wrapf(err, "find key %q", part)
			}
		case jx.Array:
			result, ok, err = findIdx(d, part)
			if err != nil {
				return errors.Wrapf(err, "find index %q", part)
			}
		default:
			return errors.Errorf("unexpected type %q", tt)
		}
		if !ok {
			return errors.Errorf("pointer %q not found", ptr)
		}

		buf = result
		return nil
	})
	return buf, err
}

func findIdx(d *jx.Decoder, part string) (result []byte, ok bool, _ error) {
	index, err := strconv.ParseUint(part, 10, 64)
	if err != nil {
		return nil, false, errors.Wrap(err, "index")
	}

	counter := uint64(0)

	iter, err := d.ArrIter()
	if err != nil {
		return nil, false, err
	}
	for iter.Next() {
		if index == counter {
			raw, err := d.Raw()
			if err != nil {
				return nil, false, errors.Wrapf(err, "parse %d", counter)
			}
			return raw, true, nil
		}
		if err := d.Skip(); err != nil {
			return nil, false, err
		}
		counter++
	}
	return nil, false, iter.Err()
}

func findKey(d *jx.Decoder, part string) (result []byte, ok bool, _ error) {
	iter, err := d.ObjIter()
	if err != nil {
		return nil, false, err
	}
	for iter.Next() {
		if string(iter.Key()) != part {
			if err := d.Skip(); err != nil {
				return nil, false, err
			}
			continue
		}
		raw, err := d.Raw()
		if err != nil {
			return nil, false, errors.Wrapf(err, "parse %q", part)
		}
		return raw, true, nil
	}
	return nil, false, iter.Err()
}

var (
	unescapeReplacer = strings.NewReplacer(
		"~1", "/",
		"~0", "~",
	)
)

func unescape(part string) string {
	// Replacer always creates new string, check that unescape is really necessary.
	if !strings.Contains(part, "~1") && !strings.Contains(part, "~0") {
		return part
	}
	return unescapeReplacer.Replace(part)
}
