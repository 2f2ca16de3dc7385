package flatten

import (
	"context"
	"errors"

	"github.com/vectorflat/svgflatten/domxml"
)

var errMaskHasGradient = errors.New("mask references a gradient fill; pass-through (Open Question (a))")

// resolveMasks implements stage 4 (§4.8.4): a mask built only from binary
// (solid-fill) geometry is converted to an equivalent clipPath and the
// mask attribute removed. A mask whose geometry fills with a gradient is
// left untouched with a warning — rasterizing gradient alpha into a hard
// clip boundary is explicitly out of scope (§9 Open Question (a)).
func (r *run) resolveMasks(goCtx context.Context, root *domxml.Node) error {
	if !r.cfg.resolveMasks {
		return nil
	}
	targets := collectElements(root, func(n *domxml.Node) bool {
		v, ok := n.Attr("mask")
		if !ok {
			return false
		}
		_, ok = parseURLRef(v)
		return ok
	})

	for _, n := range targets {
		if err := checkCancel(goCtx); err != nil {
			return err
		}
		if err := r.convertMask(root, n); err != nil {
			r.stats.warn("masks: " + err.Error())
			r.log.Warn().Str("stage", "resolveMasks").Err(err).Msg("leaving mask in place")
			continue
		}
		r.stats.MasksConverted++
	}
	return nil
}

func (r *run) convertMask(root, n *domxml.Node) error {
	v, _ := n.Attr("mask")
	id, _ := parseURLRef(v)
	maskDef := root.FindByID(id)
	if maskDef == nil {
		return ErrUnresolvedReference
	}
	if err := maskUsesGradient(root, maskDef); err != nil {
		return err
	}

	clipID := r.newID("mask-clip")
	clipDef := domxml.NewNode("clipPath")
	clipDef.SetAttr("id", clipID)
	for _, c := range maskDef.Children {
		clipDef.AppendChild(c.Clone())
	}
	ensureDefs(root).AppendChild(clipDef)

	n.RemoveAttr("mask")
	n.SetAttr("clip-path", "url(#"+clipID+")")
	return nil
}

// maskUsesGradient reports whether any geometry inside maskDef fills with
// a gradient reference, in which case the mask cannot be losslessly
// converted to a binary clip.
func maskUsesGradient(root, maskDef *domxml.Node) error {
	var found error
	maskDef.Walk(func(n *domxml.Node) bool {
		if found != nil {
			return false
		}
		fill, ok := n.Attr("fill")
		if !ok {
			return true
		}
		id, ok := parseURLRef(fill)
		if !ok {
			return true
		}
		def := root.FindByID(id)
		if def != nil && (def.Tag == "linearGradient" || def.Tag == "radialGradient") {
			found = errMaskHasGradient
			return false
		}
		return true
	})
	return found
}
