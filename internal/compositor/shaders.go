package compositor

// vertexShaderSrc maps pixel-space quad vertices into clip space using
// the screenDim uniform (spec.md §4.2 Initialization contract).
const vertexShaderSrc = `#version 330 core
layout(location = 0) in vec2 pos;
layout(location = 1) in vec2 texcoord;

uniform vec2 screenDim;

out vec2 vTexcoord;

void main() {
    vec2 clip = vec2(
        (pos.x / screenDim.x) * 2.0 - 1.0,
        1.0 - (pos.y / screenDim.y) * 2.0
    );
    gl_Position = vec4(clip, 0.0, 1.0);
    vTexcoord = texcoord;
}
` + "\x00"

// fragmentShaderSrc samples the window (or root) texture and
// multiplies in the per-window opacity (SPEC_FULL.md §4 "window
// opacity", resolving spec.md §9's open question: per-window alpha
// does multiply into the shader, premultiplied to match the
// ONE / ONE_MINUS_SRC_ALPHA blend func set up at init).
const fragmentShaderSrc = `#version 330 core
in vec2 vTexcoord;

uniform sampler2D tex;
uniform float opacity;

out vec4 fragColor;

void main() {
    vec4 c = texture(tex, vTexcoord);
    fragColor = vec4(c.rgb * opacity, c.a * opacity);
}
` + "\x00"
