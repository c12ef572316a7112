// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// SunVertexShader is the vertex shader for the sun marker.
//
//go:embed sun.vert
var SunVertexShader string

// SunFragmentShader is the fragment shader for the sun marker.
//
//go:embed sun.frag
var SunFragmentShader string
