package flatten

import (
	"context"

	"github.com/vectorflat/svgflatten/domxml"
)

// removeUnusedDefs implements stage 8 (§4.8.8): every id-bearing element
// reachable from a <defs> subtree is dropped if nothing in the document
// references it by url(#id) or href/xlink:href. References are collected
// first over the whole document (including inside other defs, so a
// gradient referenced only by a pattern that is itself still in use
// survives), then each defs child is swept once against that set.
func (r *run) removeUnusedDefs(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.removeUnusedDefs {
		return nil
	}

	used := map[string]bool{}
	root.Walk(func(n *domxml.Node) bool {
		for _, name := range []string{"fill", "stroke", "clip-path", "mask", "filter", "marker-start", "marker-mid", "marker-end"} {
			if v, ok := n.Attr(name); ok {
				if id, ok := parseURLRef(v); ok {
					used[id] = true
				}
			}
		}
		if href, ok := hrefAttr(n); ok {
			if frag, ok := parseFragment(href); ok {
				used[frag] = true
			}
		}
		return true
	})

	defsNodes := collectElements(root, func(n *domxml.Node) bool { return n.Tag == "defs" })
	for _, defs := range defsNodes {
		if err := checkCancel(goCtx); err != nil {
			return err
		}
		children := append([]*domxml.Node(nil), defs.Children...)
		for _, c := range children {
			id, ok := c.Attr("id")
			if !ok || used[id] {
				continue
			}
			defs.RemoveChild(c)
			r.stats.DefsRemoved++
		}
	}
	return nil
}
