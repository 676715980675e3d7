// Package gl draws mercatorgl projected geometry with WebGL2 through
// webgl-go. Everything except position packing builds only for GOOS=js.
package gl
