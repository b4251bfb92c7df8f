// Package template defines the engine-agnostic seam quiz renderers use to
// evaluate document templates. Implementations live in sub-packages:
// gotemplate wraps pongo2 for full templates with loops and filters, interp
// wraps fasttemplate for strict {{name}} substitution.
package template
