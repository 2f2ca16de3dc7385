package flatten

import (
	"context"
	"fmt"

	"github.com/vectorflat/svgflatten/affine"
	"github.com/vectorflat/svgflatten/decimal"
	"github.com/vectorflat/svgflatten/domxml"
	"github.com/vectorflat/svgflatten/linalg"
)

// resolveUse implements stage 1 (§4.8.1): every <use> is replaced by a
// clone of its referenced subtree wrapped in a <g> carrying
// translate(x,y) composed with the use element's own transform. Dangling
// references and cycles are recorded as warnings and the offending <use>
// is left in place. Nested <use> elements produced by a clone are expanded
// in the same pass (§5, "sibling clones ... processed in the same pass").
func (r *run) resolveUse(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.resolveUse {
		return nil
	}
	return r.walkUse(goCtx, root, root, map[string]bool{})
}

func (r *run) walkUse(goCtx context.Context, root, n *domxml.Node, stack map[string]bool) error {
	children := append([]*domxml.Node(nil), n.Children...)
	for _, c := range children {
		if err := checkCancel(goCtx); err != nil {
			return err
		}
		if c.Tag != "use" {
			if err := r.walkUse(goCtx, root, c, stack); err != nil {
				return err
			}
			continue
		}

		replacement, id, err := r.expandUse(root, c, stack)
		if err != nil {
			r.stats.warn(fmt.Sprintf("use: %v (id=%q)", err, id))
			r.log.Warn().Str("stage", "resolveUse").Str("ref", id).Err(err).Msg("skipping use element")
			continue
		}
		r.stats.UsesResolved++
		n.ReplaceChild(c, replacement)
		// id stays on stack for the whole expansion of replacement, which
		// is where a nested <use> pointing back up the chain would be
		// discovered; only once that subtree is fully walked is it safe to
		// let id be expanded again elsewhere in the document.
		err = r.walkUse(goCtx, root, replacement, stack)
		delete(stack, id)
		if err != nil {
			return err
		}
	}
	return nil
}

// expandUse resolves a single <use> element, returning the replacement <g>
// node and the id it expanded. On success, id is left set in stack; the
// caller must delete it once the replacement's own subtree (where a nested
// <use> cycling back to id would be found) has been fully walked.
func (r *run) expandUse(root, u *domxml.Node, stack map[string]bool) (*domxml.Node, string, error) {
	href, ok := hrefAttr(u)
	if !ok {
		return nil, "", ErrUnresolvedReference
	}
	id, ok := parseFragment(href)
	if !ok {
		return nil, id, ErrUnresolvedReference
	}
	if stack[id] {
		return nil, id, ErrReferenceCycle
	}
	target := root.FindByID(id)
	if target == nil {
		return nil, id, ErrUnresolvedReference
	}

	stack[id] = true
	clone := target.Clone()

	// <symbol> has no visual rendering of its own outside a <use>; it is
	// instantiated as a plain group carrying the use's placement.
	if clone.Tag == "symbol" {
		clone.Tag = "g"
	}

	x := numAttr(u, "x", decimal.Zero)
	y := numAttr(u, "y", decimal.Zero)
	m := affine.Translation2D(x, y)
	if t, ok := u.Attr("transform"); ok {
		tm, err := parseTransformAttr(r.ctx, t)
		if err == nil {
			if composed, err := linalg.Mul(r.ctx, m, tm); err == nil {
				m = composed
			}
		}
	}

	g := domxml.NewNode("g")
	g.SetAttr("transform", matrixToTransformAttr(r.ctx, m))
	g.AppendChild(clone)
	return g, id, nil
}
