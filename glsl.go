package mercatorgl

import (
	"github.com/seqsense/mercatorgl/shadertext"
)

// ProjectionGLSL declares the projection uniforms and functions:
//
//	vec4 mercator_gl_lngLatToMercator(vec3 lngLatElevation, vec2 lngLatPrecision)
//	vec4 mercator_gl_lngLatToMercator(vec3 lngLatElevation)
//	vec4 mercator_gl_lngLatToMercator(vec2 lngLat, vec2 lngLatPrecision)
//	vec4 mercator_gl_lngLatToMercator(vec2 lngLat)
//	vec4 mercator_gl_mercatorToClip(vec4 mercatorPosition)
//	vec4 mercator_gl_lngLatToClip(...) // same overloads as lngLatToMercator
//	float mercator_gl_metersToPixels(float meters, float latitude)
//
// lngLatPrecision is the low part produced by SplitPrecision. The functions
// are twins of the Uniforms methods of the same names.
const ProjectionGLSL = `
#define MERCATOR_GL_TILE_SIZE 512.0
#define MERCATOR_GL_PI 3.1415926536
#define MERCATOR_GL_TILE_SCALE (MERCATOR_GL_TILE_SIZE / (MERCATOR_GL_PI * 2.0))
#define MERCATOR_GL_OFFSET_THRESHOLD 4096.0

uniform vec2 mercator_gl_lngLatCenter;
uniform vec3 mercator_gl_angleDerivatives;
uniform vec2 mercator_gl_meterDerivatives;
uniform float mercator_gl_scale;
uniform vec4 mercator_gl_clipCenter;
uniform mat4 mercator_gl_viewProjectionMatrix;

vec4 mercator_gl_lngLatToMercator(vec3 lngLatElevation, vec2 lngLatPrecision) {
	vec3 mercatorPosition;
	if (mercator_gl_scale < MERCATOR_GL_OFFSET_THRESHOLD) {
		mercatorPosition.xy = vec2(
			(radians(lngLatElevation.x) + MERCATOR_GL_PI) * MERCATOR_GL_TILE_SCALE,
			(MERCATOR_GL_PI - log(tan(MERCATOR_GL_PI * 0.25 + radians(lngLatElevation.y) * 0.5))) * MERCATOR_GL_TILE_SCALE
		) * mercator_gl_scale;
		mercatorPosition.z = lngLatElevation.z;
	} else {
		vec2 delta = (lngLatElevation.xy - mercator_gl_lngLatCenter) + lngLatPrecision;
		mercatorPosition = vec3(
			delta.x * mercator_gl_angleDerivatives.x,
			-delta.y * (mercator_gl_angleDerivatives.y - delta.y * mercator_gl_angleDerivatives.z),
			lngLatElevation.z
		);
	}
	return vec4(mercatorPosition, 1.0);
}

vec4 mercator_gl_lngLatToMercator(vec3 lngLatElevation) {
	return mercator_gl_lngLatToMercator(lngLatElevation, vec2(0.0));
}

vec4 mercator_gl_lngLatToMercator(vec2 lngLat, vec2 lngLatPrecision) {
	return mercator_gl_lngLatToMercator(vec3(lngLat, 0.0), lngLatPrecision);
}

vec4 mercator_gl_lngLatToMercator(vec2 lngLat) {
	return mercator_gl_lngLatToMercator(vec3(lngLat, 0.0));
}

vec4 mercator_gl_mercatorToClip(vec4 mercatorPosition) {
	if (mercator_gl_scale >= MERCATOR_GL_OFFSET_THRESHOLD) {
		mercatorPosition.w = 0.0;
	}
	vec4 clipPosition = mercator_gl_viewProjectionMatrix * mercatorPosition;
	if (mercator_gl_scale >= MERCATOR_GL_OFFSET_THRESHOLD) {
		clipPosition += mercator_gl_clipCenter;
	}
	return clipPosition;
}

vec4 mercator_gl_lngLatToClip(vec3 lngLatElevation, vec2 lngLatPrecision) {
	return mercator_gl_mercatorToClip(mercator_gl_lngLatToMercator(lngLatElevation, lngLatPrecision));
}

vec4 mercator_gl_lngLatToClip(vec3 lngLatElevation) {
	return mercator_gl_lngLatToClip(lngLatElevation, vec2(0.0));
}

vec4 mercator_gl_lngLatToClip(vec2 lngLat, vec2 lngLatPrecision) {
	return mercator_gl_lngLatToClip(vec3(lngLat, 0.0), lngLatPrecision);
}

vec4 mercator_gl_lngLatToClip(vec2 lngLat) {
	return mercator_gl_lngLatToClip(vec3(lngLat, 0.0));
}

float mercator_gl_metersToPixels(float meters, float latitude) {
	return meters * (mercator_gl_meterDerivatives.x + (latitude - mercator_gl_lngLatCenter.y) * mercator_gl_meterDerivatives.y);
}

`

// InjectGLSL inserts ProjectionGLSL into a vertex shader right after its
// #version line, or at the top when there is none. Each call inserts a new
// copy; inject once per shader.
func InjectGLSL(vs string) string {
	return shadertext.InsertAfterVersion(vs, ProjectionGLSL)
}
