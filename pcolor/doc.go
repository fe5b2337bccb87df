// Package pcolor provides color conversion, blending, adjustment and palette
// helpers.
//
// A [Color] holds straight (non-premultiplied) RGBA components in [0, 1] and
// implements [image/color.Color]. Colors marshal to and from hex strings, so
// they can be embedded directly in YAML or JSON documents.
//
// # Blending
//
// [Blend] composites one color over another using a [BlendMode]. Separable
// modes follow the W3C compositing formula; Erase, Mask, Below and None are
// Porter-Duff style operators. The subpackage pcolor/ebitenx maps the same
// modes onto Ebitengine blend states for GPU rendering.
//
// # Palettes
//
// A [Palette] is an ordered list of colors that can be sampled as a gradient or
// searched for the nearest entry. Harmony generators ([Analogous], [Triadic],
// [Tetradic] and others) derive colors from a base hue. Palettes load from
// YAML with [LoadPalettes] and round-trip through CSV with [WritePaletteCSV]
// and [ReadPaletteCSV].
package pcolor
