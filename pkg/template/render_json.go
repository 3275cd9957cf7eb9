package template

import (
	"github.com/tailscale/hujson"

	"github.com/sddkit/sddkit/pkg/errors"
)

// RenderJSON renders a JSON template: tokens are substituted, then the
// result must parse. Template sources may carry comments and trailing
// commas; the output is standard JSON with normalized formatting, key
// order preserved and a single trailing newline.
//
// A parse failure is a template-author error reported for this file
// only, it never aborts the rest of the batch.
func (c *Context) RenderJSON(src []byte) ([]byte, error) {
	substituted := c.Substitute(string(src))

	v, err := hujson.Parse([]byte(substituted))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRenderJSON, "substituted template is not valid JSON")
	}
	v.Standardize()
	v.Format()

	out := v.Pack()
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}
